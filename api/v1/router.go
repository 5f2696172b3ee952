package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/protrack-simple/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(), Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Resource endpoints - protected by AuthMiddleware
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	projectGroup := authRouter.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.PATCH("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	attributeGroup := authRouter.Group("/attributes")
	{
		attributeGroup.GET("", ListAttributes)
		attributeGroup.POST("", CreateAttribute)
		attributeGroup.GET("/:id", GetAttribute)
		attributeGroup.PUT("/:id", UpdateAttribute)
		attributeGroup.PATCH("/:id", UpdateAttribute)
		attributeGroup.DELETE("/:id", DeleteAttribute)
	}

	attributeValueGroup := authRouter.Group("/attribute-values")
	{
		attributeValueGroup.GET("", ListAttributeValues)
		attributeValueGroup.POST("", CreateAttributeValue)
		attributeValueGroup.GET("/:id", GetAttributeValue)
		attributeValueGroup.PUT("/:id", UpdateAttributeValue)
		attributeValueGroup.PATCH("/:id", UpdateAttributeValue)
		attributeValueGroup.DELETE("/:id", DeleteAttributeValue)
	}

	timesheetGroup := authRouter.Group("/timesheets")
	{
		timesheetGroup.GET("", ListTimesheets)
		timesheetGroup.POST("", CreateTimesheet)
		timesheetGroup.GET("/:id", GetTimesheet)
		timesheetGroup.PUT("/:id", UpdateTimesheet)
		timesheetGroup.PATCH("/:id", UpdateTimesheet)
		timesheetGroup.DELETE("/:id", DeleteTimesheet)
	}
}
