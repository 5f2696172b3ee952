package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timesheet logs hours a user worked on a project
type Timesheet struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ProjectID string    `json:"project_id" gorm:"type:uuid;not null;index"`
	TaskName  string    `json:"task_name" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"`
	Hours     float64   `json:"hours" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    *UserSummary `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Project *Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate assigns a UUID primary key before the row is inserted
func (t *Timesheet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
