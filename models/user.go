package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role values for User.Role.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Status values for User.Status.
const (
	StatusPending = "PENDING"
	StatusActive  = "ACTIVE"
	StatusBlocked = "BLOCKED"
)

// User represents a member of the challenge platform. Passwords are stored as bcrypt hashes only.
// Email is the matching key for payment webhooks and is always persisted lowercase.
type User struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Email              string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName           string         `gorm:"size:255" json:"full_name"`
	Phone              string         `gorm:"size:32" json:"phone"`
	PasswordHash       string         `gorm:"size:255" json:"-"`
	Role               string         `gorm:"size:16;default:'member'" json:"role"`
	Status             string         `gorm:"size:16;default:'PENDING'" json:"status"`
	MustChangePassword bool           `gorm:"default:false" json:"must_change_password"`
	AvatarURL          string         `gorm:"size:512" json:"avatar_url"`
	LeadID             *uint          `gorm:"index" json:"lead_id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate normalizes the email and ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}