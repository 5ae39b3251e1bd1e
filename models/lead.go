package models

import "time"

// Lead is a marketing contact captured before purchase. Webhook provisioning
// links a new account to its originating lead by email when one exists.
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;index;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Source    string    `gorm:"size:64" json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// TrackingEvent is an analytics row emitted when a purchase is attributed to a lead.
type TrackingEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LeadID    uint      `gorm:"index;not null" json:"lead_id"`
	EventName string    `gorm:"size:64;not null" json:"event_name"`
	EventData string    `gorm:"type:text" json:"event_data"` // JSON blob with product/price details
	ContextID string    `gorm:"size:64" json:"context_id"`
	CreatedAt time.Time `json:"created_at"`
}
