package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mert/facesmash/internal/app/controllers"
	"github.com/mert/facesmash/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	rateLimiter *middleware.RateLimiter,
) {
	api := router.Group("/api")
	api.Use(rateLimiter.Middleware())

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	students := api.Group("/students")
	{
		// Static segments are registered before the parameterized routes so
		// gin resolves /random, /vote and /stats without ambiguity.
		students.GET("/random", studentController.GetRandomStudents)
		students.POST("/vote", middleware.ValidateVote(), studentController.Vote)
		students.GET("/stats", studentController.GetStats)

		students.GET("", middleware.ValidateStudentQuery(), studentController.ListStudents)
		students.POST("", middleware.ValidateStudentCreation(), studentController.CreateStudent)

		students.PUT("/:id", middleware.ValidateID(), studentController.UpdateStudent)
		students.DELETE("/:id", middleware.ValidateID(), studentController.DeleteStudent)
	}
}
