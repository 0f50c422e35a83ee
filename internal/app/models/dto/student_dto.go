package dto

import (
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/helpers"
)

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name      string  `json:"name" binding:"required,max=150"`
	CPF       string  `json:"cpf" binding:"required"`
	Email     string  `json:"email" binding:"required,email,max=150"`
	BirthDate *string `json:"birthDate,omitempty"` // YYYY-MM-DD
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	Name      string  `json:"name" binding:"required,max=150"`
	CPF       string  `json:"cpf" binding:"required"`
	Email     string  `json:"email" binding:"required,email,max=150"`
	BirthDate *string `json:"birthDate,omitempty"`
}

// StudentResponse is the summary view of a student. It deliberately carries
// no class offering back-references so that embedding it inside a class view
// cannot recurse.
type StudentResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name" example:"Ada Lovelace"`
	CPF       string  `json:"cpf" example:"12345678901"`
	Email     string  `json:"email" example:"ada@x.test"`
	BirthDate *string `json:"birthDate,omitempty" example:"1815-12-10"`
}

// NewStudentResponse builds the summary view from a stored student
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		CPF:       s.CPF,
		Email:     s.Email,
		BirthDate: helpers.FormatDatePtr(s.BirthDate),
	}
}

// NewStudentListResponse builds summary views for a list of students
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
