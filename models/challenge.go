package models

import "time"

// ChallengeDay is one unit of course content. DayNumber is 1-based and unique,
// but the code never assumes the sequence is gapless.
type ChallengeDay struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	DayNumber        int                 `gorm:"uniqueIndex;not null" json:"day_number"`
	Title            string              `gorm:"size:255;not null" json:"title"`
	Description      string              `gorm:"type:text" json:"description"`
	MorningMessage   string              `gorm:"type:text" json:"morning_message"`
	FireConcept      string              `gorm:"type:text" json:"fire_concept"`
	ExpectedResult   string              `gorm:"type:text" json:"expected_result"`
	ReflectionPrompt string              `gorm:"type:text" json:"reflection_prompt"`
	Tasks            []ChallengeTask     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tasks"`
	Resources        []ChallengeResource `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"resources"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ChallengeTask is an atomic checklist item within a day.
type ChallengeTask struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DayID       uint      `gorm:"index;not null" json:"day_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// Resource type values.
const (
	ResourcePDF       = "pdf"
	ResourceSheet     = "sheet"
	ResourceAudio     = "audio"
	ResourceVideo     = "video"
	ResourceLink      = "link"
	ResourceCommunity = "community"
)

// ChallengeResource is display-only support material attached to a day.
type ChallengeResource struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DayID     uint      `gorm:"index;not null" json:"day_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	URL       string    `gorm:"size:1024" json:"url"`
	Type      string    `gorm:"size:16;default:'link'" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
