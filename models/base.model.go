package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base replaces gorm.Model: string UUID keys, no soft delete.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Image is a reference to an uploaded media asset.
type Image struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// IsValidID reports whether id has the shape of a record key.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
