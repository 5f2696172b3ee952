package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/models"
	"github.com/protrack-simple/repositories"
	"gorm.io/gorm"
)

// AttributeValueService handles business logic for attribute values
type AttributeValueService struct {
	valueRepo     *repositories.AttributeValueRepository
	attributeRepo *repositories.AttributeRepository
	projectRepo   *repositories.ProjectRepository
}

// NewAttributeValueService creates a new attribute value service instance
func NewAttributeValueService() *AttributeValueService {
	return &AttributeValueService{
		valueRepo:     repositories.NewAttributeValueRepository(),
		attributeRepo: repositories.NewAttributeRepository(),
		projectRepo:   repositories.NewProjectRepository(),
	}
}

// ListAttributeValues retrieves all attribute values
func (s *AttributeValueService) ListAttributeValues() ([]models.AttributeValue, error) {
	return s.valueRepo.FindAll()
}

// GetAttributeValue retrieves an attribute value by ID
func (s *AttributeValueService) GetAttributeValue(id string) (models.AttributeValue, error) {
	value, err := s.valueRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AttributeValue{}, NotFoundError{Resource: "Attribute value"}
	}
	return value, err
}

// CreateAttributeValue attaches a value to a project after checking that the
// referenced attribute and project exist and that the value parses as the
// attribute's declared type
func (s *AttributeValueService) CreateAttributeValue(req dto.CreateAttributeValueRequest) (models.AttributeValue, error) {
	attribute, err := s.attributeRepo.FindByID(req.AttributeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AttributeValue{}, NewValidationError("attribute_id", "The selected attribute_id is invalid.")
	}
	if err != nil {
		return models.AttributeValue{}, err
	}

	exists, err := s.projectRepo.Exists(req.EntityID)
	if err != nil {
		return models.AttributeValue{}, err
	}
	if !exists {
		return models.AttributeValue{}, NewValidationError("entity_id", "The selected entity_id is invalid.")
	}

	value := strings.ToLower(req.Value)
	if err := validateValueType(attribute.Type, value); err != nil {
		return models.AttributeValue{}, err
	}

	return s.valueRepo.Create(models.AttributeValue{
		AttributeID: req.AttributeID,
		EntityID:    req.EntityID,
		Value:       value,
	})
}

// UpdateAttributeValue applies the supplied fields to an existing attribute
// value, revalidating each supplied reference and the value's type
func (s *AttributeValueService) UpdateAttributeValue(id string, req dto.UpdateAttributeValueRequest) (models.AttributeValue, error) {
	value, err := s.valueRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AttributeValue{}, NotFoundError{Resource: "Attribute value"}
	}
	if err != nil {
		return models.AttributeValue{}, err
	}

	if req.AttributeID != nil {
		if _, err := s.attributeRepo.FindByID(*req.AttributeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.AttributeValue{}, NewValidationError("attribute_id", "The selected attribute_id is invalid.")
			}
			return models.AttributeValue{}, err
		}
		value.AttributeID = *req.AttributeID
	}

	if req.EntityID != nil {
		exists, err := s.projectRepo.Exists(*req.EntityID)
		if err != nil {
			return models.AttributeValue{}, err
		}
		if !exists {
			return models.AttributeValue{}, NewValidationError("entity_id", "The selected entity_id is invalid.")
		}
		value.EntityID = *req.EntityID
	}

	if req.Value != nil {
		attribute, err := s.attributeRepo.FindByID(value.AttributeID)
		if err != nil {
			return models.AttributeValue{}, err
		}

		normalized := strings.ToLower(*req.Value)
		if err := validateValueType(attribute.Type, normalized); err != nil {
			return models.AttributeValue{}, err
		}
		value.Value = normalized
	}

	if err := s.valueRepo.Update(value); err != nil {
		return models.AttributeValue{}, err
	}
	return value, nil
}

// DeleteAttributeValue removes an attribute value
func (s *AttributeValueService) DeleteAttributeValue(id string) error {
	_, err := s.valueRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError{Resource: "Attribute value"}
	}
	if err != nil {
		return err
	}

	return s.valueRepo.Delete(id)
}

// validateValueType checks a value against the attribute's declared type.
// Text and select values accept any string.
func validateValueType(attrType models.AttributeType, value string) error {
	switch attrType {
	case models.AttributeDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return NewValidationError("value", "The value is not a valid date.")
		}
	case models.AttributeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return NewValidationError("value", "The value must be a number.")
		}
	}
	return nil
}
