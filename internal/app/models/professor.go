package models

// Professor defines the professor model based on the 'professors' table
type Professor struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	Name           string `json:"name" db:"name" example:"Alan Turing"`
	Email          string `json:"email" db:"email" example:"at@x.test"` // unique
	Specialization string `json:"specialization" db:"specialization" example:"Computer Science"`
	Bio            string `json:"bio,omitempty" db:"bio"` // up to 500 characters
}
