package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/services"
	"github.com/protrack-simple/utils"
)

var attributeService = services.NewAttributeService()

// ListAttributes returns all attribute definitions
func ListAttributes(c *gin.Context) {
	attributes, err := attributeService.ListAttributes()
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve attributes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attributes retrieved successfully",
		"data":    attributes,
	})
}

// GetAttribute returns one attribute definition
func GetAttribute(c *gin.Context) {
	attribute, err := attributeService.GetAttribute(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve attribute")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute retrieved successfully",
		"data":    attribute,
	})
}

// CreateAttribute defines a new attribute
func CreateAttribute(c *gin.Context) {
	var req dto.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	attribute, err := attributeService.CreateAttribute(req)
	if err != nil {
		handleServiceError(c, err, "Failed to create attribute")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Attribute created successfully",
		"data":    attribute,
	})
}

// UpdateAttribute applies a partial update to an attribute definition
func UpdateAttribute(c *gin.Context) {
	var req dto.UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	attribute, err := attributeService.UpdateAttribute(c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update attribute")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute updated successfully",
		"data":    attribute,
	})
}

// DeleteAttribute removes an attribute definition and its values
func DeleteAttribute(c *gin.Context) {
	if err := attributeService.DeleteAttribute(c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete attribute")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute deleted successfully",
	})
}
