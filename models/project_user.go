package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectUser links a user to a project they are a member of
type ProjectUser struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ProjectID string    `json:"project_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the singular join table name used by the schema
func (ProjectUser) TableName() string {
	return "project_user"
}

// BeforeCreate assigns a UUID primary key before the row is inserted
func (pu *ProjectUser) BeforeCreate(tx *gorm.DB) error {
	if pu.ID == "" {
		pu.ID = uuid.NewString()
	}
	return nil
}
