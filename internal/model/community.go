package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Community represents a named group of users.
type Community struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members []User `json:"members" gorm:"many2many:community_members"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
