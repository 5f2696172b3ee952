package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/middleware"
	"github.com/protrack-simple/services"
	"github.com/protrack-simple/utils"
)

var projectService = services.NewProjectService()

// ListProjects returns projects matching the optional filters[key]=value
// query parameters. Keys address native columns or attribute names; every
// recognized filter must match.
func ListProjects(c *gin.Context) {
	filters := c.QueryMap("filters")

	projects, err := projectService.ListProjects(filters)
	if err != nil {
		handleServiceError(c, err, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Projects retrieved successfully",
		"data":    projects,
	})
}

// GetProject returns one project with its attribute values
func GetProject(c *gin.Context) {
	project, err := projectService.GetProject(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project retrieved successfully",
		"data":    project,
	})
}

// CreateProject creates a project and attaches the creator as a member
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)

	project, err := projectService.CreateProject(req, userID)
	if err != nil {
		handleServiceError(c, err, "Something went wrong")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"data":    project,
	})
}

// UpdateProject applies a partial update to a project
func UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	project, err := projectService.UpdateProject(c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"data":    project,
	})
}

// DeleteProject removes a project and everything that belongs to it
func DeleteProject(c *gin.Context) {
	if err := projectService.DeleteProject(c.Param("id")); err != nil {
		handleServiceError(c, err, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}
