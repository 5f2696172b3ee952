package dto

// CreateAttributeRequest represents the request payload for defining a new attribute
type CreateAttributeRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Type string `json:"type" binding:"required,oneof=text date number select"`
}

// UpdateAttributeRequest represents a partial update to an attribute definition
type UpdateAttributeRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Type *string `json:"type" binding:"omitempty,oneof=text date number select"`
}
