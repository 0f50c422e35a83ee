package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
)

// classOfferingColumns are the joined columns for a class offering with its
// course and professor resolved in one round trip.
var classOfferingColumns = []string{
	"c.id", "c.code", "c.start_date", "c.end_date", "c.course_id", "c.professor_id",
	"co.id", "co.name", "co.description", "co.hours",
	"p.id", "p.name", "p.email", "p.specialization", "p.bio",
}

// ClassOfferingRepository handles database operations for class offerings
type ClassOfferingRepository struct {
	db DB
}

// NewClassOfferingRepository creates a new class offering repository
func NewClassOfferingRepository(db DB) *ClassOfferingRepository {
	return &ClassOfferingRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ClassOfferingRepository) WithTx(tx pgx.Tx) *ClassOfferingRepository {
	return &ClassOfferingRepository{db: tx}
}

// Create inserts a new class offering and assigns its identifier
func (r *ClassOfferingRepository) Create(ctx context.Context, class *models.ClassOffering) error {
	query := squirrel.Insert("class_offerings").
		Columns("code", "start_date", "end_date", "course_id", "professor_id").
		Values(class.Code, class.StartDate, class.EndDate, class.CourseID, class.ProfessorID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&class.ID)
}

// GetByID retrieves a class offering by ID with its course and professor
// resolved, returning nil when no row matches.
func (r *ClassOfferingRepository) GetByID(ctx context.Context, id int64) (*models.ClassOffering, error) {
	query := squirrel.Select(classOfferingColumns...).
		From("class_offerings c").
		Join("courses co ON co.id = c.course_id").
		Join("professors p ON p.id = c.professor_id").
		Where("c.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	class, err := scanClassOffering(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving class offering: %w", err)
	}

	return class, nil
}

// GetAll retrieves all class offerings with courses and professors resolved
func (r *ClassOfferingRepository) GetAll(ctx context.Context) ([]*models.ClassOffering, error) {
	query := squirrel.Select(classOfferingColumns...).
		From("class_offerings c").
		Join("courses co ON co.id = c.course_id").
		Join("professors p ON p.id = c.professor_id").
		OrderBy("c.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var classes []*models.ClassOffering
	for rows.Next() {
		class, err := scanClassOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// GetByStudentID retrieves all class offerings a student is enrolled in
func (r *ClassOfferingRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.ClassOffering, error) {
	query := squirrel.Select(classOfferingColumns...).
		From("class_offerings c").
		Join("courses co ON co.id = c.course_id").
		Join("professors p ON p.id = c.professor_id").
		Join("class_enrollments e ON e.class_offering_id = c.id").
		Where("e.student_id = ?", studentID).
		OrderBy("c.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var classes []*models.ClassOffering
	for rows.Next() {
		class, err := scanClassOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update replaces the mutable fields of an existing class offering, including
// both references. Callers resolve the references first; an omitted reference
// keeps its stored value at the service layer.
func (r *ClassOfferingRepository) Update(ctx context.Context, class *models.ClassOffering) error {
	query := squirrel.Update("class_offerings").
		Set("code", class.Code).
		Set("start_date", class.StartDate).
		Set("end_date", class.EndDate).
		Set("course_id", class.CourseID).
		Set("professor_id", class.ProfessorID).
		Where("id = ?", class.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating class offering: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a class offering by ID. Enrollment rows go with it via the
// join table's ON DELETE CASCADE; the students themselves are untouched.
func (r *ClassOfferingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM class_offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class offering: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// ExistsByID checks whether a class offering with the given ID exists
func (r *ClassOfferingRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM class_offerings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class offering existence: %w", err)
	}
	return exists, nil
}

// ExistsByCode checks whether a class offering other than excludeID already
// holds the given code.
func (r *ClassOfferingRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM class_offerings WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class code uniqueness: %w", err)
	}
	return exists, nil
}

// LockForUpdate takes a row lock on the class offering so that concurrent
// enrollment edits on the same class serialize. Must run inside a
// transaction; returns false when the class does not exist.
func (r *ClassOfferingRepository) LockForUpdate(ctx context.Context, id int64) (bool, error) {
	var lockedID int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM class_offerings WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error locking class offering: %w", err)
	}
	return true, nil
}

// scanClassOffering scans the joined class offering columns from a row
func scanClassOffering(row pgx.Row) (*models.ClassOffering, error) {
	var class models.ClassOffering
	var course models.Course
	var professor models.Professor

	err := row.Scan(
		&class.ID, &class.Code, &class.StartDate, &class.EndDate,
		&class.CourseID, &class.ProfessorID,
		&course.ID, &course.Name, &course.Description, &course.Hours,
		&professor.ID, &professor.Name, &professor.Email, &professor.Specialization, &professor.Bio,
	)
	if err != nil {
		return nil, err
	}

	class.Course = &course
	class.Professor = &professor
	return &class, nil
}
