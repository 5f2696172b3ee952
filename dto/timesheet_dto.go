package dto

// CreateTimesheetRequest represents the request payload for logging a timesheet
type CreateTimesheetRequest struct {
	TaskName  string   `json:"task_name" binding:"required,max=255"`
	Date      string   `json:"date" binding:"required,datetime=2006-01-02"`
	Hours     *float64 `json:"hours" binding:"required,min=0"`
	UserID    string   `json:"user_id" binding:"required,uuid"`
	ProjectID string   `json:"project_id" binding:"required,uuid"`
}

// UpdateTimesheetRequest represents a partial update to a timesheet
type UpdateTimesheetRequest struct {
	TaskName  *string  `json:"task_name" binding:"omitempty,max=255"`
	Date      *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Hours     *float64 `json:"hours" binding:"omitempty,min=0"`
	UserID    *string  `json:"user_id" binding:"omitempty,uuid"`
	ProjectID *string  `json:"project_id" binding:"omitempty,uuid"`
}
