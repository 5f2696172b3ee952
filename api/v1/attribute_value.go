package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/services"
	"github.com/protrack-simple/utils"
)

var attributeValueService = services.NewAttributeValueService()

// ListAttributeValues returns all attribute values
func ListAttributeValues(c *gin.Context) {
	values, err := attributeValueService.ListAttributeValues()
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve attribute values")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute values retrieved successfully",
		"data":    values,
	})
}

// GetAttributeValue returns one attribute value
func GetAttributeValue(c *gin.Context) {
	value, err := attributeValueService.GetAttributeValue(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve attribute value")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute value retrieved successfully",
		"data":    value,
	})
}

// CreateAttributeValue attaches an attribute value to a project
func CreateAttributeValue(c *gin.Context) {
	var req dto.CreateAttributeValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	value, err := attributeValueService.CreateAttributeValue(req)
	if err != nil {
		handleServiceError(c, err, "Failed to create attribute value")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Attribute value created successfully",
		"data":    value,
	})
}

// UpdateAttributeValue applies a partial update to an attribute value
func UpdateAttributeValue(c *gin.Context) {
	var req dto.UpdateAttributeValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	value, err := attributeValueService.UpdateAttributeValue(c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update attribute value")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute value updated successfully",
		"data":    value,
	})
}

// DeleteAttributeValue removes an attribute value
func DeleteAttributeValue(c *gin.Context) {
	if err := attributeValueService.DeleteAttributeValue(c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete attribute value")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute value deleted successfully",
	})
}
