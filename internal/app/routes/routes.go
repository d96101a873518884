package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolregistry/internal/app/controllers"
	"github.com/yigit/schoolregistry/internal/app/models/dto"
	"github.com/yigit/schoolregistry/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	employeeController *controllers.EmployeeController,
	healthController *controllers.HealthController,
) {
	router.GET("/health", healthController.Health)

	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:uuid", studentController.GetStudent)
		students.PUT("/:uuid", studentController.UpdateStudent)
		students.DELETE("/:uuid", studentController.DeleteStudent)
	}

	employees := v1.Group("/employees")
	{
		employees.GET("", employeeController.GetEmployees)
		employees.POST("", employeeController.CreateEmployee)
		employees.GET("/:uuid", employeeController.GetEmployee)
		employees.PUT("/:uuid", employeeController.UpdateEmployee)
		employees.DELETE("/:uuid", employeeController.DeleteEmployee)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.Respond(c, http.StatusNotFound,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")))
	})
}
