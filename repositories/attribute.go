package repositories

import (
	"github.com/protrack-simple/database"
	"github.com/protrack-simple/models"
	"gorm.io/gorm"
)

// AttributeRepository handles database operations for attribute definitions
type AttributeRepository struct{}

// NewAttributeRepository creates a new attribute repository instance
func NewAttributeRepository() *AttributeRepository {
	return &AttributeRepository{}
}

// FindAll retrieves all attributes
func (r *AttributeRepository) FindAll() ([]models.Attribute, error) {
	var attributes []models.Attribute
	result := database.DB.Order("created_at ASC, id ASC").Find(&attributes)
	return attributes, result.Error
}

// FindByID retrieves an attribute by its ID
func (r *AttributeRepository) FindByID(id string) (models.Attribute, error) {
	var attribute models.Attribute
	result := database.DB.First(&attribute, "id = ?", id)
	return attribute, result.Error
}

// NameTaken checks whether a name is already used by another attribute.
// Names are stored lowercased so an exact match suffices.
func (r *AttributeRepository) NameTaken(name, excludeID string) (bool, error) {
	var count int64
	db := database.DB.Model(&models.Attribute{}).Where("name = ?", name)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// Create inserts a new attribute into the database
func (r *AttributeRepository) Create(attribute models.Attribute) (models.Attribute, error) {
	result := database.DB.Create(&attribute)
	return attribute, result.Error
}

// Update modifies an existing attribute
func (r *AttributeRepository) Update(attribute models.Attribute) error {
	result := database.DB.Save(&attribute)
	return result.Error
}

// Delete removes an attribute and its values
func (r *AttributeRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attribute_id = ?", id).Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Attribute{}, "id = ?", id).Error
	})
}
