package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributeType represents the declared value type of a dynamic attribute
type AttributeType string

const (
	AttributeText   AttributeType = "text"
	AttributeDate   AttributeType = "date"
	AttributeNumber AttributeType = "number"
	AttributeSelect AttributeType = "select"
)

// Attribute defines a dynamic project field (EAV definition side)
type Attribute struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string        `json:"name" gorm:"uniqueIndex;not null"`
	Type      AttributeType `json:"type" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Relations
	Values []AttributeValue `json:"values,omitempty" gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key before the row is inserted
func (a *Attribute) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
