package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/controllers"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/middleware"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	studentController *controllers.StudentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/university", facultyController.GetUniversity)

	faculties := v1.Group("/faculties")
	{
		faculties.GET("", facultyController.ListFaculties)
		faculties.POST("", facultyController.CreateFaculty)
		faculties.GET("/:name", facultyController.GetFacultyByName)

		students := faculties.Group("/:name/students")
		{
			students.POST("", studentController.AddStudent)
			students.GET("/enrolled", studentController.ListEnrolled)
			students.GET("/graduated", studentController.ListGraduates)
			students.POST("/:studentId/graduate", studentController.GraduateStudent)
		}
	}

	v1.GET("/students/:studentId/faculty", studentController.SearchFacultyByStudent)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	router.NoRoute(func(c *gin.Context) {
		middleware.HandleAPIError(c, apperrors.NewResourceNotFoundError("no route for "+c.Request.Method+" "+c.Request.URL.Path))
	})
}
