package models

import "time"

// TaskCompletion records that a user finished a task. The (user_id, task_id)
// pair is unique; existence of the row means the task is done.
type TaskCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;index:idx_completion_user_task,unique;not null" json:"user_id"`
	TaskID      uint      `gorm:"index;index:idx_completion_user_task,unique;not null" json:"task_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

// UserNote holds a member's free-form note for one day. One note per (user, day).
type UserNote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;index:idx_note_user_day,unique;not null" json:"user_id"`
	DayID     uint      `gorm:"index;index:idx_note_user_day,unique;not null" json:"day_id"`
	Content   string    `gorm:"type:text" json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
