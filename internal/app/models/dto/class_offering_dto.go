package dto

import (
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/helpers"
)

// EntityRef is a nested reference payload carrying only an identifier:
// {"course": {"id": 1}}. Any non-key fields a caller puts inside the nested
// object are ignored.
type EntityRef struct {
	ID int64 `json:"id" binding:"required,gt=0"`
}

// CreateClassOfferingRequest represents class offering creation data. Both
// references are mandatory.
type CreateClassOfferingRequest struct {
	Code      string     `json:"code" binding:"required,max=50"`
	StartDate string     `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string     `json:"endDate" binding:"required"`
	Course    *EntityRef `json:"course" binding:"required"`
	Professor *EntityRef `json:"professor" binding:"required"`
}

// UpdateClassOfferingRequest represents class offering update data. A nil
// reference leaves the stored association untouched; updates never null out
// relational fields the payload omits.
type UpdateClassOfferingRequest struct {
	Code      string     `json:"code" binding:"required,max=50"`
	StartDate string     `json:"startDate" binding:"required"`
	EndDate   string     `json:"endDate" binding:"required"`
	Course    *EntityRef `json:"course,omitempty"`
	Professor *EntityRef `json:"professor,omitempty"`
}

// ClassOfferingResponse is the list view of a class offering: resolved course
// and professor, no roster.
type ClassOfferingResponse struct {
	ID        int64              `json:"id" example:"1"`
	Code      string             `json:"code" example:"ALG-01"`
	StartDate string             `json:"startDate" example:"2026-02-01"`
	EndDate   string             `json:"endDate" example:"2026-06-30"`
	Course    *CourseResponse    `json:"course,omitempty"`
	Professor *ProfessorResponse `json:"professor,omitempty"`
}

// ClassOfferingDetailResponse is the detail view: the list view plus the full
// roster. Embedded student views carry no class back-references, which is
// what keeps the Class->Students->Classes cycle out of the payload.
type ClassOfferingDetailResponse struct {
	ClassOfferingResponse
	Students []StudentResponse `json:"students"`
}

// NewClassOfferingResponse builds the list view from a class offering with
// its course and professor relations populated.
func NewClassOfferingResponse(c *models.ClassOffering) ClassOfferingResponse {
	resp := ClassOfferingResponse{
		ID:        c.ID,
		Code:      c.Code,
		StartDate: helpers.FormatDate(c.StartDate),
		EndDate:   helpers.FormatDate(c.EndDate),
	}
	if c.Course != nil {
		course := NewCourseResponse(c.Course)
		resp.Course = &course
	}
	if c.Professor != nil {
		professor := NewProfessorResponse(c.Professor)
		resp.Professor = &professor
	}
	return resp
}

// NewClassOfferingDetailResponse builds the detail view. The roster is always
// present, empty rather than null when no student is enrolled.
func NewClassOfferingDetailResponse(c *models.ClassOffering) ClassOfferingDetailResponse {
	return ClassOfferingDetailResponse{
		ClassOfferingResponse: NewClassOfferingResponse(c),
		Students:              NewStudentListResponse(c.Students),
	}
}

// NewClassOfferingListResponse builds list views for a list of class offerings
func NewClassOfferingListResponse(classes []*models.ClassOffering) []ClassOfferingResponse {
	out := make([]ClassOfferingResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, NewClassOfferingResponse(c))
	}
	return out
}
