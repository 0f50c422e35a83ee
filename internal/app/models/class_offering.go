package models

import "time"

// ClassOffering represents a scheduled instance of a Course taught by a
// Professor to a roster of Students ("turma").
type ClassOffering struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Code        string    `json:"code" db:"code" example:"ALG-01"` // unique
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	ProfessorID int64     `json:"professorId" db:"professor_id"`

	// Relations (populated when needed)
	Course    *Course    `json:"course,omitempty"`
	Professor *Professor `json:"professor,omitempty"`
	Students  []*Student `json:"students,omitempty"`
}

// Enrollment is one membership edge between a Student and a ClassOffering.
// The relation carries no attributes of its own.
type Enrollment struct {
	ClassOfferingID int64     `json:"classOfferingId" db:"class_offering_id"`
	StudentID       int64     `json:"studentId" db:"student_id"`
	EnrolledAt      time.Time `json:"enrolledAt" db:"enrolled_at"`
}
