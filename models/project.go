package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "pending"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
)

// Project represents a tracked project
type Project struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string        `json:"name" gorm:"not null"`
	Status    ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Relations
	AttributeValues []AttributeValue `json:"attribute_values" gorm:"foreignKey:EntityID;constraint:OnDelete:CASCADE"`
	Timesheets      []Timesheet      `json:"timesheets,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key before the row is inserted
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
