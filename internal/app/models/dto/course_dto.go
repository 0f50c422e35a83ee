package dto

import "github.com/rafaelbarros/gestao-cursos/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Hours       int    `json:"hours" binding:"required,gte=1"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Hours       int    `json:"hours" binding:"required,gte=1"`
}

// CourseResponse is the summary view of a course, with no class offering
// back-references.
type CourseResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Algorithms"`
	Description string `json:"description" example:"Design and analysis of algorithms"`
	Hours       int    `json:"hours" example:"40"`
}

// NewCourseResponse builds the summary view from a stored course
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Hours:       c.Hours,
	}
}

// NewCourseListResponse builds summary views for a list of courses
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
