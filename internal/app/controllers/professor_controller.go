package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models/dto"
	"github.com/rafaelbarros/gestao-cursos/internal/app/services"
	"github.com/rafaelbarros/gestao-cursos/internal/middleware"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// CreateProfessor handles professor creation
// @Summary Create a new professor
// @Description Creates a new professor with a unique email
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor := &models.Professor{
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		Bio:            req.Bio,
	}

	if err := c.professorService.CreateProfessor(ctx, professor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewProfessorResponse(professor),
		Timestamp: time.Now(),
	})
}

// GetProfessorByID retrieves a professor by ID
// @Summary Get professor by ID
// @Description Retrieves a specific professor by their ID
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor ID")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewProfessorResponse(professor),
		Timestamp: time.Now(),
	})
}

// GetAllProfessors retrieves all professors
// @Summary Get all professors
// @Description Retrieves a list of all registered professors
// @Tags professors
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProfessorResponse} "Professors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors, err := c.professorService.GetAllProfessors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewProfessorListResponse(professors),
		Timestamp: time.Now(),
	})
}

// UpdateProfessor updates an existing professor
// @Summary Update professor
// @Description Updates an existing professor's information
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param request body dto.UpdateProfessorRequest true "Updated professor information"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor ID")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor := &models.Professor{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		Bio:            req.Bio,
	}

	if err := c.professorService.UpdateProfessor(ctx, professor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewProfessorResponse(professor),
		Timestamp: time.Now(),
	})
}

// DeleteProfessor deletes a professor
// @Summary Delete professor
// @Description Deletes a professor that is not referenced by any class offering
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Success 204 "Professor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 409 {object} dto.ErrorResponse "Professor is referenced by class offerings"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor ID")
	if !ok {
		return
	}

	if err := c.professorService.DeleteProfessor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
