package repositories

import (
	"github.com/protrack-simple/database"
	"github.com/protrack-simple/models"
	"gorm.io/gorm"
)

// TimesheetRepository handles database operations for timesheets
type TimesheetRepository struct{}

// NewTimesheetRepository creates a new timesheet repository instance
func NewTimesheetRepository() *TimesheetRepository {
	return &TimesheetRepository{}
}

// withRelations eager-loads the related project and the reduced user
// projection {id, first_name, email}
func (r *TimesheetRepository) withRelations() *gorm.DB {
	return database.DB.Preload("User").Preload("Project")
}

// FindAll retrieves all timesheets with their project and user
func (r *TimesheetRepository) FindAll() ([]models.Timesheet, error) {
	var timesheets []models.Timesheet
	result := r.withRelations().Order("created_at ASC, id ASC").Find(&timesheets)
	return timesheets, result.Error
}

// FindByID retrieves a timesheet row by its ID
func (r *TimesheetRepository) FindByID(id string) (models.Timesheet, error) {
	var timesheet models.Timesheet
	result := database.DB.First(&timesheet, "id = ?", id)
	return timesheet, result.Error
}

// FindWithRelations retrieves a timesheet by its ID with its project and user
func (r *TimesheetRepository) FindWithRelations(id string) (models.Timesheet, error) {
	var timesheet models.Timesheet
	result := r.withRelations().First(&timesheet, "id = ?", id)
	return timesheet, result.Error
}

// Create inserts a new timesheet into the database
func (r *TimesheetRepository) Create(timesheet models.Timesheet) (models.Timesheet, error) {
	result := database.DB.Create(&timesheet)
	return timesheet, result.Error
}

// Update modifies an existing timesheet
func (r *TimesheetRepository) Update(timesheet models.Timesheet) error {
	result := database.DB.Save(&timesheet)
	return result.Error
}

// Delete removes a timesheet from the database
func (r *TimesheetRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Timesheet{}, "id = ?", id)
	return result.Error
}
