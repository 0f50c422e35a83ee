package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	Name      string     `json:"name" db:"name" example:"Ada Lovelace"`
	CPF       string     `json:"cpf" db:"cpf" example:"12345678901"` // 11 digits, unique
	Email     string     `json:"email" db:"email" example:"ada@x.test"` // unique
	BirthDate *time.Time `json:"birthDate,omitempty" db:"birth_date"`
}
