package repositories

import (
	"github.com/protrack-simple/database"
	"github.com/protrack-simple/models"
)

// AttributeValueRepository handles database operations for attribute values
type AttributeValueRepository struct{}

// NewAttributeValueRepository creates a new attribute value repository instance
func NewAttributeValueRepository() *AttributeValueRepository {
	return &AttributeValueRepository{}
}

// FindAll retrieves all attribute values
func (r *AttributeValueRepository) FindAll() ([]models.AttributeValue, error) {
	var values []models.AttributeValue
	result := database.DB.Order("created_at ASC, id ASC").Find(&values)
	return values, result.Error
}

// FindByID retrieves an attribute value by its ID
func (r *AttributeValueRepository) FindByID(id string) (models.AttributeValue, error) {
	var value models.AttributeValue
	result := database.DB.First(&value, "id = ?", id)
	return value, result.Error
}

// Create inserts a new attribute value into the database
func (r *AttributeValueRepository) Create(value models.AttributeValue) (models.AttributeValue, error) {
	result := database.DB.Create(&value)
	return value, result.Error
}

// Update modifies an existing attribute value
func (r *AttributeValueRepository) Update(value models.AttributeValue) error {
	result := database.DB.Save(&value)
	return result.Error
}

// Delete removes an attribute value from the database
func (r *AttributeValueRepository) Delete(id string) error {
	result := database.DB.Delete(&models.AttributeValue{}, "id = ?", id)
	return result.Error
}
