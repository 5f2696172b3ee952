package services

import (
	"errors"
	"strings"

	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/models"
	"github.com/protrack-simple/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListProjects retrieves projects matching the given filters, each with its
// full attribute-value set. An empty filter map returns every project.
func (s *ProjectService) ListProjects(filters map[string]string) ([]models.Project, error) {
	return s.projectRepo.ListFiltered(filters)
}

// GetProject retrieves a project by ID with its attribute values
func (s *ProjectService) GetProject(id string) (models.Project, error) {
	project, err := s.projectRepo.FindWithAttributeValues(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, NotFoundError{Resource: "Project"}
	}
	return project, err
}

// CreateProject creates a new project and makes the creator a member
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, userID string) (models.Project, error) {
	project := models.Project{
		Name:   strings.ToLower(req.Name),
		Status: models.StatusPending,
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(strings.ToLower(*req.Status))
	}

	return s.projectRepo.CreateWithOwner(project, userID)
}

// UpdateProject applies the supplied fields to an existing project
func (s *ProjectService) UpdateProject(id string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, NotFoundError{Resource: "Project"}
	}
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != nil {
		project.Name = strings.ToLower(*req.Name)
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(strings.ToLower(*req.Status))
	}

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteProject removes a project along with its timesheets, attribute
// values and membership rows
func (s *ProjectService) DeleteProject(id string) error {
	exists, err := s.projectRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return NotFoundError{Resource: "Project"}
	}

	return s.projectRepo.Delete(id)
}
