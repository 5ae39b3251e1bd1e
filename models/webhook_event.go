package models

import "time"

// WebhookEvent is an append-only audit row for every inbound payment-provider
// delivery, stored before any processing so failed deliveries remain debuggable.
type WebhookEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DeliveryID string    `gorm:"size:64;index" json:"delivery_id"`
	Provider   string    `gorm:"size:32;not null" json:"provider"`
	Payload    string    `gorm:"type:text" json:"payload"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
