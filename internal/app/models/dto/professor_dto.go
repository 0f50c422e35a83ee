package dto

import "github.com/rafaelbarros/gestao-cursos/internal/app/models"

// CreateProfessorRequest represents professor creation data
type CreateProfessorRequest struct {
	Name           string `json:"name" binding:"required,max=150"`
	Email          string `json:"email" binding:"required,email,max=150"`
	Specialization string `json:"specialization" binding:"required,max=100"`
	Bio            string `json:"bio" binding:"max=500"`
}

// UpdateProfessorRequest represents professor update data
type UpdateProfessorRequest struct {
	Name           string `json:"name" binding:"required,max=150"`
	Email          string `json:"email" binding:"required,email,max=150"`
	Specialization string `json:"specialization" binding:"required,max=100"`
	Bio            string `json:"bio" binding:"max=500"`
}

// ProfessorResponse is the summary view of a professor, with no class
// offering back-references.
type ProfessorResponse struct {
	ID             int64  `json:"id" example:"1"`
	Name           string `json:"name" example:"Alan Turing"`
	Email          string `json:"email" example:"at@x.test"`
	Specialization string `json:"specialization" example:"Computer Science"`
	Bio            string `json:"bio,omitempty"`
}

// NewProfessorResponse builds the summary view from a stored professor
func NewProfessorResponse(p *models.Professor) ProfessorResponse {
	return ProfessorResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Specialization: p.Specialization,
		Bio:            p.Bio,
	}
}

// NewProfessorListResponse builds summary views for a list of professors
func NewProfessorListResponse(professors []*models.Professor) []ProfessorResponse {
	out := make([]ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		out = append(out, NewProfessorResponse(p))
	}
	return out
}
