package dto

// CreateAttributeValueRequest represents the request payload for attaching an
// attribute value to a project (entity_id is the project ID)
type CreateAttributeValueRequest struct {
	AttributeID string `json:"attribute_id" binding:"required,uuid"`
	EntityID    string `json:"entity_id" binding:"required,uuid"`
	Value       string `json:"value" binding:"required,max=255"`
}

// UpdateAttributeValueRequest represents a partial update to an attribute value
type UpdateAttributeValueRequest struct {
	AttributeID *string `json:"attribute_id" binding:"omitempty,uuid"`
	EntityID    *string `json:"entity_id" binding:"omitempty,uuid"`
	Value       *string `json:"value" binding:"omitempty,max=255"`
}
