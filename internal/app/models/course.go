package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Algorithms"` // unique
	Description string `json:"description" db:"description" example:"Design and analysis of algorithms"`
	Hours       int    `json:"hours" db:"hours" example:"40"` // workload, minimum 1
}
