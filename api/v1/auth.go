package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protrack-simple/dto"
	"github.com/protrack-simple/middleware"
	"github.com/protrack-simple/services"
	"github.com/protrack-simple/utils"
)

// Register handles user registration
func Register(c *gin.Context) {
	var req dto.RegisterRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	token, err := services.Register(req)
	if err != nil {
		var verr services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation Error",
				"details": verr.Details,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Something went wrong",
			"details": "An unexpected error occurred. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
	})
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"details": utils.ValidationDetails(err),
		})
		return
	}

	token, err := services.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "User not found",
				"message": fmt.Sprintf("user with email '%s' not found", req.Email),
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "The provided credentials do not match our records.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Something went wrong",
				"details": "An unexpected error occurred. Please try again later.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"token":   token,
	})
}

// GetCurrentUser returns the authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	user, err := services.GetUser(userID)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve user profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// Logout revokes the presented token
func Logout(c *gin.Context) {
	value, exists := c.Get(middleware.ContextClaimsKey)
	claims, ok := value.(*dto.TokenClaims)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Unauthorized",
			"message": "Access token is required",
		})
		return
	}

	if err := services.Logout(claims); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Something went wrong during logout",
			"details": "An unexpected error occurred. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged out",
	})
}
