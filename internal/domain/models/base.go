package models

import "time"

// BaseModel carries the surrogate identifier and the store-managed
// timestamps shared by all persisted entities.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
