package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the identifier and timestamps shared by every collection.
// IDs are opaque strings so they read the same from Postgres and the memory store.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not choose an ID.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Visibility flag columns used by the public read filter.
const (
	FlagActive    = "is_active"
	FlagPublished = "is_published"
)

// Common orderings, expressed as SQL ORDER BY clauses.
const (
	OrderDisplay     = "sort_order ASC"
	OrderCreatedAsc  = "created_at ASC"
	OrderCreatedDesc = "created_at DESC"
)
