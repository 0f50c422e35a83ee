package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/helpers"
)

// ErrNoEnrollment is returned when a removal matches no membership row
var ErrNoEnrollment = errors.New("enrollment not found")

// EnrollmentRepository handles the class_enrollments join table, the
// many-to-many membership relation between students and class offerings.
type EnrollmentRepository struct {
	db DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx}
}

// GetStudentsByClassID retrieves the full roster of a class offering
func (r *EnrollmentRepository) GetStudentsByClassID(ctx context.Context, classID int64) ([]*models.Student, error) {
	query := squirrel.Select("s.id", "s.name", "s.cpf", "s.email", "s.birth_date").
		From("students s").
		Join("class_enrollments e ON e.student_id = s.id").
		Where("e.class_offering_id = ?", classID).
		OrderBy("s.id").
		PlaceholderFormat(squirrel.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
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
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		student.BirthDate = helpers.TimePtr(birthDate)
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// IsEnrolled checks if a student is enrolled in a specific class offering
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, classID, studentID int64) (bool, error) {
	query := squirrel.Select("1").
		From("class_enrollments").
		Where("class_offering_id = ? AND student_id = ?", classID, studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// Add appends one membership row for the (class, student) pair and returns
// the stored edge with its store-assigned enrollment time.
func (r *EnrollmentRepository) Add(ctx context.Context, classID, studentID int64) (*models.Enrollment, error) {
	query := squirrel.Insert("class_enrollments").
		Columns("class_offering_id", "student_id").
		Values(classID, studentID).
		Suffix("RETURNING enrolled_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	enrollment := &models.Enrollment{
		ClassOfferingID: classID,
		StudentID:       studentID,
	}
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&enrollment.EnrolledAt); err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return enrollment, nil
}

// Remove deletes the membership row for the (class, student) pair, reporting
// ErrNoEnrollment when the pair was not enrolled.
func (r *EnrollmentRepository) Remove(ctx context.Context, classID, studentID int64) error {
	query := squirrel.Delete("class_enrollments").
		Where("class_offering_id = ? AND student_id = ?", classID, studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoEnrollment
	}

	return nil
}
