package dto

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	Status *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

// UpdateProjectRequest represents a partial update to an existing project.
// Absent fields are left untouched.
type UpdateProjectRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	Status *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}
