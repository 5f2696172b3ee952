package services

import (
	"errors"
	"strings"

	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/models"
	"github.com/protrack-simple/repositories"
	"gorm.io/gorm"
)

// AttributeService handles business logic for attribute definitions
type AttributeService struct {
	attributeRepo *repositories.AttributeRepository
}

// NewAttributeService creates a new attribute service instance
func NewAttributeService() *AttributeService {
	return &AttributeService{
		attributeRepo: repositories.NewAttributeRepository(),
	}
}

// ListAttributes retrieves all attribute definitions
func (s *AttributeService) ListAttributes() ([]models.Attribute, error) {
	return s.attributeRepo.FindAll()
}

// GetAttribute retrieves an attribute by ID
func (s *AttributeService) GetAttribute(id string) (models.Attribute, error) {
	attribute, err := s.attributeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Attribute{}, NotFoundError{Resource: "Attribute"}
	}
	return attribute, err
}

// CreateAttribute defines a new attribute with a unique name
func (s *AttributeService) CreateAttribute(req dto.CreateAttributeRequest) (models.Attribute, error) {
	name := strings.ToLower(req.Name)

	taken, err := s.attributeRepo.NameTaken(name, "")
	if err != nil {
		return models.Attribute{}, err
	}
	if taken {
		return models.Attribute{}, NewValidationError("name", "The name has already been taken.")
	}

	attribute := models.Attribute{
		Name: name,
		Type: models.AttributeType(strings.ToLower(req.Type)),
	}
	return s.attributeRepo.Create(attribute)
}

// UpdateAttribute applies the supplied fields to an existing attribute
func (s *AttributeService) UpdateAttribute(id string, req dto.UpdateAttributeRequest) (models.Attribute, error) {
	attribute, err := s.attributeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Attribute{}, NotFoundError{Resource: "Attribute"}
	}
	if err != nil {
		return models.Attribute{}, err
	}

	if req.Name != nil {
		name := strings.ToLower(*req.Name)
		taken, err := s.attributeRepo.NameTaken(name, id)
		if err != nil {
			return models.Attribute{}, err
		}
		if taken {
			return models.Attribute{}, NewValidationError("name", "The name has already been taken.")
		}
		attribute.Name = name
	}
	if req.Type != nil {
		attribute.Type = models.AttributeType(strings.ToLower(*req.Type))
	}

	if err := s.attributeRepo.Update(attribute); err != nil {
		return models.Attribute{}, err
	}
	return attribute, nil
}

// DeleteAttribute removes an attribute and every value referencing it
func (s *AttributeService) DeleteAttribute(id string) error {
	_, err := s.attributeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError{Resource: "Attribute"}
	}
	if err != nil {
		return err
	}

	return s.attributeRepo.Delete(id)
}
