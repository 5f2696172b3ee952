package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/services"
	"github.com/protrack-simple/utils"
)

var timesheetService = services.NewTimesheetService()

// ListTimesheets returns all timesheets with their project and user
func ListTimesheets(c *gin.Context) {
	timesheets, err := timesheetService.ListTimesheets()
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve timesheets")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Timesheets retrieved successfully",
		"data":    timesheets,
	})
}

// GetTimesheet returns one timesheet with its project and user
func GetTimesheet(c *gin.Context) {
	timesheet, err := timesheetService.GetTimesheet(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve timesheet")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Timesheet retrieved successfully",
		"data":    timesheet,
	})
}

// CreateTimesheet logs a new timesheet
func CreateTimesheet(c *gin.Context) {
	var req dto.CreateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	timesheet, err := timesheetService.CreateTimesheet(req)
	if err != nil {
		handleServiceError(c, err, "Failed to create timesheet")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Timesheet created successfully",
		"data":    timesheet,
	})
}

// UpdateTimesheet applies a partial update to a timesheet
func UpdateTimesheet(c *gin.Context) {
	var req dto.UpdateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	timesheet, err := timesheetService.UpdateTimesheet(c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update timesheet")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Timesheet updated successfully",
		"data":    timesheet,
	})
}

// DeleteTimesheet removes a timesheet
func DeleteTimesheet(c *gin.Context) {
	if err := timesheetService.DeleteTimesheet(c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete timesheet")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Timesheet deleted successfully",
	})
}
