package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/protrack-simple/services"
)

// handleServiceError maps a service error onto the matching error envelope:
// validation failures get per-field details with 422, missing rows get 404,
// anything else becomes a generic 500 with serverError as the headline.
func handleServiceError(c *gin.Context, err error, serverError string) {
	var verr services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"details": verr.Details,
		})
		return
	}

	var nf services.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   nf.Error(),
			"details": "The requested " + strings.ToLower(nf.Resource) + " does not exist.",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   serverError,
		"details": "An unexpected error occurred. Please try again later.",
	})
}
