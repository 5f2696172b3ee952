package services

import (
	"errors"
	"strings"

	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/models"
	"github.com/protrack-simple/repositories"
	"gorm.io/gorm"
)

// TimesheetService handles business logic for timesheets
type TimesheetService struct {
	timesheetRepo *repositories.TimesheetRepository
	userRepo      *repositories.UserRepository
	projectRepo   *repositories.ProjectRepository
}

// NewTimesheetService creates a new timesheet service instance
func NewTimesheetService() *TimesheetService {
	return &TimesheetService{
		timesheetRepo: repositories.NewTimesheetRepository(),
		userRepo:      repositories.NewUserRepository(),
		projectRepo:   repositories.NewProjectRepository(),
	}
}

// ListTimesheets retrieves all timesheets with their project and the reduced
// user projection
func (s *TimesheetService) ListTimesheets() ([]models.Timesheet, error) {
	return s.timesheetRepo.FindAll()
}

// GetTimesheet retrieves a timesheet by ID with its project and user
func (s *TimesheetService) GetTimesheet(id string) (models.Timesheet, error) {
	timesheet, err := s.timesheetRepo.FindWithRelations(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Timesheet{}, NotFoundError{Resource: "Timesheet"}
	}
	return timesheet, err
}

// CreateTimesheet logs a new timesheet after checking the referenced user
// and project exist
func (s *TimesheetService) CreateTimesheet(req dto.CreateTimesheetRequest) (models.Timesheet, error) {
	if err := s.checkReferences(req.UserID, req.ProjectID); err != nil {
		return models.Timesheet{}, err
	}

	timesheet := models.Timesheet{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		TaskName:  strings.ToLower(req.TaskName),
		Date:      req.Date,
		Hours:     *req.Hours,
	}
	return s.timesheetRepo.Create(timesheet)
}

// UpdateTimesheet applies the supplied fields to an existing timesheet
func (s *TimesheetService) UpdateTimesheet(id string, req dto.UpdateTimesheetRequest) (models.Timesheet, error) {
	timesheet, err := s.timesheetRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Timesheet{}, NotFoundError{Resource: "Timesheet"}
	}
	if err != nil {
		return models.Timesheet{}, err
	}

	userID := timesheet.UserID
	if req.UserID != nil {
		userID = *req.UserID
	}
	projectID := timesheet.ProjectID
	if req.ProjectID != nil {
		projectID = *req.ProjectID
	}
	if req.UserID != nil || req.ProjectID != nil {
		if err := s.checkReferences(userID, projectID); err != nil {
			return models.Timesheet{}, err
		}
	}

	timesheet.UserID = userID
	timesheet.ProjectID = projectID
	if req.TaskName != nil {
		timesheet.TaskName = strings.ToLower(*req.TaskName)
	}
	if req.Date != nil {
		timesheet.Date = *req.Date
	}
	if req.Hours != nil {
		timesheet.Hours = *req.Hours
	}

	if err := s.timesheetRepo.Update(timesheet); err != nil {
		return models.Timesheet{}, err
	}
	return timesheet, nil
}

// DeleteTimesheet removes a timesheet
func (s *TimesheetService) DeleteTimesheet(id string) error {
	_, err := s.timesheetRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError{Resource: "Timesheet"}
	}
	if err != nil {
		return err
	}

	return s.timesheetRepo.Delete(id)
}

func (s *TimesheetService) checkReferences(userID, projectID string) error {
	userExists, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !userExists {
		return NewValidationError("user_id", "The selected user_id is invalid.")
	}

	projectExists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return err
	}
	if !projectExists {
		return NewValidationError("project_id", "The selected project_id is invalid.")
	}
	return nil
}
