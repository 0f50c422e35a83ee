package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models/dto"
	"github.com/rafaelbarros/gestao-cursos/internal/app/services"
	"github.com/rafaelbarros/gestao-cursos/internal/middleware"
)

// ClassOfferingController handles class offering and enrollment operations
type ClassOfferingController struct {
	classService *services.ClassOfferingService
}

// NewClassOfferingController creates a new ClassOfferingController
func NewClassOfferingController(classService *services.ClassOfferingService) *ClassOfferingController {
	return &ClassOfferingController{
		classService: classService,
	}
}

// CreateClassOffering handles class offering creation
// @Summary Create a new class offering
// @Description Creates a new class offering bound to an existing course and professor
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.CreateClassOfferingRequest true "Class offering information"
// @Success 201 {object} dto.APIResponse{data=dto.ClassOfferingDetailResponse} "Class offering created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unresolvable reference"
// @Failure 409 {object} dto.ErrorResponse "Class code already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (c *ClassOfferingController) CreateClassOffering(ctx *gin.Context) {
	var req dto.CreateClassOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class offering data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	detail, err := c.classService.CreateClassOffering(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// GetClassOfferingByID retrieves a class offering by ID
// @Summary Get class offering by ID
// @Description Retrieves a class offering with its course, professor and roster
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path int true "Class offering ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClassOfferingDetailResponse} "Class offering retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class offering ID"
// @Failure 404 {object} dto.ErrorResponse "Class offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classId} [get]
func (c *ClassOfferingController) GetClassOfferingByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classId", "class offering ID")
	if !ok {
		return
	}

	detail, err := c.classService.GetClassOfferingByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// GetAllClassOfferings retrieves all class offerings
// @Summary Get all class offerings
// @Description Retrieves list views of all class offerings, rosters omitted
// @Tags classes
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassOfferingResponse} "Class offerings retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *ClassOfferingController) GetAllClassOfferings(ctx *gin.Context) {
	classes, err := c.classService.GetAllClassOfferings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// GetClassStudents retrieves the roster of a class offering
// @Summary Get class roster
// @Description Retrieves the students enrolled in a class offering
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path int true "Class offering ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Roster retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class offering ID"
// @Failure 404 {object} dto.ErrorResponse "Class offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classId}/students [get]
func (c *ClassOfferingController) GetClassStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classId", "class offering ID")
	if !ok {
		return
	}

	students, err := c.classService.GetClassStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// UpdateClassOffering updates an existing class offering
// @Summary Update class offering
// @Description Updates a class offering; omitted references keep their stored values
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path int true "Class offering ID"
// @Param request body dto.UpdateClassOfferingRequest true "Updated class offering information"
// @Success 200 {object} dto.APIResponse{data=dto.ClassOfferingDetailResponse} "Class offering updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unresolvable reference"
// @Failure 404 {object} dto.ErrorResponse "Class offering not found"
// @Failure 409 {object} dto.ErrorResponse "Class code already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classId} [put]
func (c *ClassOfferingController) UpdateClassOffering(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classId", "class offering ID")
	if !ok {
		return
	}

	var req dto.UpdateClassOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class offering data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	detail, err := c.classService.UpdateClassOffering(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// DeleteClassOffering deletes a class offering
// @Summary Delete class offering
// @Description Deletes a class offering and its enrollment rows; students are untouched
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path int true "Class offering ID"
// @Success 204 "Class offering deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class offering ID"
// @Failure 404 {object} dto.ErrorResponse "Class offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classId} [delete]
func (c *ClassOfferingController) DeleteClassOffering(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classId", "class offering ID")
	if !ok {
		return
	}

	if err := c.classService.DeleteClassOffering(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// EnrollStudent enrolls a student in a class offering
// @Summary Enroll student
// @Description Adds a student to the class roster; enrolling twice is a conflict
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path int true "Class offering ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClassOfferingDetailResponse} "Student enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Class offering or student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classId}/enroll/{studentId} [post]
func (c *ClassOfferingController) EnrollStudent(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "classId", "class offering ID")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", "student ID")
	if !ok {
		return
	}

	detail, err := c.classService.Enroll(ctx, classID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// UnenrollStudent removes a student from a class offering
// @Summary Unenroll student
// @Description Removes a student from the class roster
// @Tags classes
// @Accept json
// @Produce json
// @Param classId path int true "Class offering ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClassOfferingDetailResponse} "Student unenrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Class offering, student or enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{classId}/enroll/{studentId} [delete]
func (c *ClassOfferingController) UnenrollStudent(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "classId", "class offering ID")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", "student ID")
	if !ok {
		return
	}

	detail, err := c.classService.Unenroll(ctx, classID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}
