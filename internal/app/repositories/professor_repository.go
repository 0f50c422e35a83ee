package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
)

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db DB
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ProfessorRepository) WithTx(tx pgx.Tx) *ProfessorRepository {
	return &ProfessorRepository{db: tx}
}

// Create inserts a new professor and assigns its identifier
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (name, email, specialization, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		professor.Name, professor.Email, professor.Specialization, professor.Bio,
	).Scan(&professor.ID)
}

// GetByID retrieves a professor by ID, returning nil when no row matches
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	query := `
		SELECT id, name, email, specialization, bio
		FROM professors
		WHERE id = $1
	`

	var professor models.Professor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&professor.ID,
		&professor.Name,
		&professor.Email,
		&professor.Specialization,
		&professor.Bio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	return &professor, nil
}

// GetAll retrieves all professors
func (r *ProfessorRepository) GetAll(ctx context.Context) ([]*models.Professor, error) {
	query := `
		SELECT id, name, email, specialization, bio
		FROM professors
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professors []*models.Professor
	for rows.Next() {
		var professor models.Professor
		if err := rows.Scan(
			&professor.ID,
			&professor.Name,
			&professor.Email,
			&professor.Specialization,
			&professor.Bio,
		); err != nil {
			return nil, err
		}
		professors = append(professors, &professor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return professors, nil
}

// Update replaces the mutable fields of an existing professor
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	query := `
		UPDATE professors
		SET name = $1, email = $2, specialization = $3, bio = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		professor.Name, professor.Email, professor.Specialization, professor.Bio, professor.ID)
	if err != nil {
		return fmt.Errorf("error updating professor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a professor by ID
func (r *ProfessorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM professors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// ExistsByID checks whether a professor with the given ID exists
func (r *ProfessorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM professors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmail checks whether a professor other than excludeID already holds
// the given email.
func (r *ProfessorRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM professors WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor email uniqueness: %w", err)
	}
	return exists, nil
}

// HasClassOfferings checks whether any class offering still references the
// professor.
func (r *ProfessorRepository) HasClassOfferings(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM class_offerings WHERE professor_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor references: %w", err)
	}
	return exists, nil
}
