package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models/dto"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/apperrors"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Controllers
// call it for every error a service returns; only binding failures are
// handled inline.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 404 group
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Student not found", err)
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Course not found", err)
	case errors.Is(err, apperrors.ErrProfessorNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Professor not found", err)
	case errors.Is(err, apperrors.ErrClassNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Class offering not found", err)
	case errors.Is(err, apperrors.ErrNotEnrolled):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Student is not enrolled in this class", err)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Resource not found", err)

	// 409 group
	case errors.Is(err, apperrors.ErrCPFAlreadyExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Student with this CPF already exists", err)
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Student with this email already exists", err)
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Course with this name already exists", err)
	case errors.Is(err, apperrors.ErrProfessorAlreadyExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Professor with this email already exists", err)
	case errors.Is(err, apperrors.ErrClassCodeExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Class offering with this code already exists", err)
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Student is already enrolled in this class", err)
	case errors.Is(err, apperrors.ErrCourseHasClasses):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Course is referenced by class offerings and cannot be deleted", err)
	case errors.Is(err, apperrors.ErrProfessorHasClasses):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Professor is referenced by class offerings and cannot be deleted", err)
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Conflict with existing resource", err)

	// 400 group
	case errors.Is(err, apperrors.ErrBadReference):
		respondError(c, 400, dto.ErrorCodeBadReference, "Referenced entity not found", err)
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondValidationError(c, err)

	// 500 group
	case errors.Is(err, apperrors.ErrIntegrity):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Integrity violation")
		respondError(c, 500, dto.ErrorCodeDatabaseError, "Data integrity violation", nil)
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respondError(c, 500, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

// respondError writes the standard error envelope. When the error carries a
// CustomError message, that message replaces the generic one so callers see
// the specific cause.
func respondError(c *gin.Context, status int, code dto.ErrorCode, message string, err error) {
	var customErr *apperrors.CustomError
	if err != nil && errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// respondValidationError surfaces the offending field when the error names one
func respondValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		if customErr.Message != "" {
			errorDetail.Message = customErr.Message
		}
		if field, ok := customErr.Details["field"].(string); ok {
			errorDetail = errorDetail.WithField(field)
		}
	}

	c.JSON(400, dto.NewErrorResponse(errorDetail))
}
