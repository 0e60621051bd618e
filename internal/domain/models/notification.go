package models

import "time"

// Notification represents a message delivered to exactly one admin.
// Rows are produced by an external system; this service only reads them.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(100)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"type:varchar(50)" json:"type"`
	SentAt      time.Time `json:"sentAt"`
	ReceiverID  uint      `gorm:"not null;index" json:"receiverId"`
	Receiver    *Admin    `gorm:"foreignKey:ReceiverID" json:"-"` // back-reference, never serialized
}
