package repositories

import (
	"errors"
	"strings"

	"github.com/protrack-simple/database"
	"github.com/protrack-simple/models"
	"gorm.io/gorm"
)

// Filterable native project columns (whitelist approach for security)
var nativeFilterColumns = map[string]bool{
	"name":   true,
	"status": true,
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// ListFiltered retrieves projects matching every recognized filter, each with
// its full attribute-value set. Filter keys and values are matched
// case-insensitively. A key may address a native column, a dynamic attribute,
// or both at once; in the collision case both predicates apply. Keys matching
// neither are ignored. Results come back in creation order.
func (r *ProjectRepository) ListFiltered(filters map[string]string) ([]models.Project, error) {
	db := database.DB.Model(&models.Project{})

	// Native column pass: substring match on whitelisted columns
	for key, value := range filters {
		key = strings.ToLower(key)
		value = strings.ToLower(value)
		if nativeFilterColumns[key] {
			db = db.Where("LOWER("+key+") LIKE ?", "%"+value+"%")
		}
	}

	// EAV pass: runs for every key regardless of the native pass, so a key
	// that is both a column and an attribute name contributes two predicates
	for key, value := range filters {
		key = strings.ToLower(key)
		value = strings.ToLower(value)

		var attribute models.Attribute
		result := database.DB.Where("LOWER(name) = ?", key).First(&attribute)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			continue
		}
		if result.Error != nil {
			return nil, result.Error
		}

		db = db.Where(
			"EXISTS (SELECT 1 FROM attribute_values WHERE attribute_values.entity_id = projects.id"+
				" AND attribute_values.attribute_id = ? AND LOWER(attribute_values.value) LIKE ?)",
			attribute.ID, "%"+value+"%",
		)
	}

	var projects []models.Project
	err := db.Preload("AttributeValues").Order("created_at ASC, id ASC").Find(&projects).Error
	return projects, err
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindWithAttributeValues retrieves a project with its attribute values
func (r *ProjectRepository) FindWithAttributeValues(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("AttributeValues").First(&project, "id = ?", id)
	return project, result.Error
}

// Exists checks if a project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateWithOwner inserts a new project and the membership row linking the
// creator, in one transaction
func (r *ProjectRepository) CreateWithOwner(project models.Project, userID string) (models.Project, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		membership := models.ProjectUser{
			UserID:    userID,
			ProjectID: project.ID,
		}
		return tx.Create(&membership).Error
	})
	return project, err
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project and its dependent rows
func (r *ProjectRepository) Delete(id string) error {
	// Transaction so dependents never outlive the project
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Timesheet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_id = ?", id).Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
