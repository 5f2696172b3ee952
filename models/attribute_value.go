package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributeValue stores one dynamic attribute value for a project
// (EAV value side; EntityID references the project)
type AttributeValue struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	AttributeID string    `json:"attribute_id" gorm:"type:uuid;not null;index"`
	EntityID    string    `json:"entity_id" gorm:"type:uuid;not null;index"`
	Value       string    `json:"value" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Attribute *Attribute `json:"attribute,omitempty" gorm:"foreignKey:AttributeID"`
}

// BeforeCreate assigns a UUID primary key before the row is inserted
func (av *AttributeValue) BeforeCreate(tx *gorm.DB) error {
	if av.ID == "" {
		av.ID = uuid.NewString()
	}
	return nil
}
