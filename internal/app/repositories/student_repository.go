package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/helpers"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx}
}

// Create inserts a new student and assigns its identifier
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, cpf, email, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.CPF, student.Email, helpers.GetNullTime(student.BirthDate),
	).Scan(&student.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a student by ID, returning nil when no row matches
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, cpf, email, birth_date
		FROM students
		WHERE id = $1
	`

	var student models.Student
	var birthDate sql.NullTime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.CPF,
		&student.Email,
		&birthDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.BirthDate = helpers.TimePtr(birthDate)
	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, cpf, email, birth_date
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var birthDate sql.NullTime
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.CPF,
			&student.Email,
			&birthDate,
		); err != nil {
			return nil, err
		}
		student.BirthDate = helpers.TimePtr(birthDate)
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update replaces the mutable fields of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, cpf = $2, email = $3, birth_date = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.CPF, student.Email, helpers.GetNullTime(student.BirthDate), student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// ExistsByID checks whether a student with the given ID exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// ExistsByCPF checks whether a student other than excludeID already holds the
// given CPF. Pass excludeID 0 for create flows.
func (r *StudentRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE cpf = $1 AND id != $2)`,
		cpf, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking CPF uniqueness: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks whether a student other than excludeID already holds
// the given email.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email uniqueness: %w", err)
	}
	return exists, nil
}
