package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models/dto"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performWithError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected error detail in response")
	}
	return &resp
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"professor not found", apperrors.ErrProfessorNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"class not found", apperrors.ErrClassNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"not enrolled", apperrors.ErrNotEnrolled, 404, dto.ErrorCodeResourceNotFound},
		{"cpf exists", apperrors.ErrCPFAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"email exists", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"course exists", apperrors.ErrCourseAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"professor exists", apperrors.ErrProfessorAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"class code exists", apperrors.ErrClassCodeExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, 409, dto.ErrorCodeResourceAlreadyExists},
		{"course has classes", apperrors.ErrCourseHasClasses, 409, dto.ErrorCodeResourceAlreadyExists},
		{"professor has classes", apperrors.ErrProfessorHasClasses, 409, dto.ErrorCodeResourceAlreadyExists},
		{"bad reference", apperrors.ErrBadReference, 400, dto.ErrorCodeBadReference},
		{"validation failed", apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{"integrity violation", apperrors.ErrIntegrity, 500, dto.ErrorCodeDatabaseError},
		{"unknown error", errors.New("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithError(tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			resp := decodeErrorResponse(t, w)
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Error.Code, tt.wantCode)
			}
			if resp.Success {
				t.Error("error responses must have success=false")
			}
		})
	}
}

// Wrapped sentinels keep their mapping and surface the specific message.
func TestHandleAPIErrorCustomMessage(t *testing.T) {
	err := apperrors.NewBadReferenceError("Course not found with ID: 42")
	w := performWithError(err)

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Error.Message != "Course not found with ID: 42" {
		t.Errorf("message = %q, want the specific cause", resp.Error.Message)
	}
}

func TestHandleAPIErrorValidationField(t *testing.T) {
	err := apperrors.NewValidationError("cpf", "CPF must be exactly 11 digits")
	w := performWithError(err)

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Error.Field != "cpf" {
		t.Errorf("field = %q, want %q", resp.Error.Field, "cpf")
	}
	if resp.Error.Message != "CPF must be exactly 11 digits" {
		t.Errorf("message = %q, want the field message", resp.Error.Message)
	}
}

// Wrapping through fmt or service layers must not change the mapping.
func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrClassNotFound, "")
	w := performWithError(err)
	if w.Code != 404 {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
