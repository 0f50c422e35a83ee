package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelbarros/gestao-cursos/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	professorController *controllers.ProfessorController,
	classController *controllers.ClassOfferingController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/:id/classes", studentController.GetStudentClasses)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	professors := v1.Group("/professors")
	{
		professors.POST("", professorController.CreateProfessor)
		professors.GET("", professorController.GetAllProfessors)
		professors.GET("/:id", professorController.GetProfessorByID)
		professors.PUT("/:id", professorController.UpdateProfessor)
		professors.DELETE("/:id", professorController.DeleteProfessor)
	}

	classes := v1.Group("/classes")
	{
		classes.POST("", classController.CreateClassOffering)
		classes.GET("", classController.GetAllClassOfferings)
		classes.GET("/:classId", classController.GetClassOfferingByID)
		classes.GET("/:classId/students", classController.GetClassStudents)
		classes.PUT("/:classId", classController.UpdateClassOffering)
		classes.DELETE("/:classId", classController.DeleteClassOffering)

		// Enrollment relation
		classes.POST("/:classId/enroll/:studentId", classController.EnrollStudent)
		classes.DELETE("/:classId/enroll/:studentId", classController.UnenrollStudent)
	}

	// Health endpoint outside the versioned group
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
