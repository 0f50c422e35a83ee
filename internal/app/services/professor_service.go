package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
	"github.com/rafaelbarros/gestao-cursos/internal/app/repositories"
	"github.com/rafaelbarros/gestao-cursos/internal/db"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/apperrors"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/dberrors"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/validation"
)

// ProfessorService handles professor-related operations
type ProfessorService struct {
	pool          *pgxpool.Pool
	professorRepo *repositories.ProfessorRepository
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(pool *pgxpool.Pool, professorRepo *repositories.ProfessorRepository) *ProfessorService {
	return &ProfessorService{
		pool:          pool,
		professorRepo: professorRepo,
	}
}

// validateProfessor validates professor data before database operations
func validateProfessor(professor *models.Professor) error {
	if professor == nil {
		return apperrors.NewValidationError("professor", "professor is required")
	}

	if validation.IsBlank(professor.Name) {
		return apperrors.NewValidationError("name", "name cannot be empty")
	}

	if len(professor.Name) > validation.NameMaxLength {
		return apperrors.NewValidationError("name", "name is too long")
	}

	if !validation.IsValidEmail(professor.Email) {
		return apperrors.NewValidationError("email", "email is invalid")
	}

	if validation.IsBlank(professor.Specialization) {
		return apperrors.NewValidationError("specialization", "specialization cannot be empty")
	}

	if len(professor.Specialization) > validation.SpecializationMaxLength {
		return apperrors.NewValidationError("specialization", "specialization is too long")
	}

	if len(professor.Bio) > validation.BioMaxLength {
		return apperrors.NewValidationError("bio", "bio must be at most 500 characters")
	}

	return nil
}

// CreateProfessor creates a new professor
func (s *ProfessorService) CreateProfessor(ctx context.Context, professor *models.Professor) error {
	if err := validateProfessor(professor); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.professorRepo.WithTx(tx)

		exists, err := repo.ExistsByEmail(ctx, professor.Email, 0)
		if err != nil {
			return fmt.Errorf("error checking professor email: %w", err)
		}
		if exists {
			return apperrors.ErrProfessorAlreadyExists
		}

		return repo.Create(ctx, professor)
	})

	return mapProfessorWriteError(err)
}

// GetProfessorByID retrieves a professor by ID
func (s *ProfessorService) GetProfessorByID(ctx context.Context, id int64) (*models.Professor, error) {
	professor, err := s.professorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}

	return professor, nil
}

// GetAllProfessors retrieves all professors
func (s *ProfessorService) GetAllProfessors(ctx context.Context) ([]*models.Professor, error) {
	professors, err := s.professorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professors: %w", err)
	}
	return professors, nil
}

// UpdateProfessor updates an existing professor
func (s *ProfessorService) UpdateProfessor(ctx context.Context, professor *models.Professor) error {
	if err := validateProfessor(professor); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.professorRepo.WithTx(tx)

		existing, err := repo.GetByID(ctx, professor.ID)
		if err != nil {
			return fmt.Errorf("error retrieving professor: %w", err)
		}
		if existing == nil {
			return apperrors.ErrProfessorNotFound
		}

		exists, err := repo.ExistsByEmail(ctx, professor.Email, professor.ID)
		if err != nil {
			return fmt.Errorf("error checking professor email: %w", err)
		}
		if exists {
			return apperrors.ErrProfessorAlreadyExists
		}

		return repo.Update(ctx, professor)
	})

	return mapProfessorWriteError(err)
}

// DeleteProfessor deletes a professor by ID. A professor still assigned to a
// class offering is not deleted.
func (s *ProfessorService) DeleteProfessor(ctx context.Context, id int64) error {
	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.professorRepo.WithTx(tx)

		referenced, err := repo.HasClassOfferings(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking professor references: %w", err)
		}
		if referenced {
			return apperrors.ErrProfessorHasClasses
		}

		if err := repo.Delete(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrProfessorNotFound
			}
			return fmt.Errorf("error deleting professor: %w", err)
		}
		return nil
	})

	return mapProfessorWriteError(err)
}

// mapProfessorWriteError decodes constraint hits that raced past the
// pre-checks: a duplicate email on create/update, or a class offering created
// between the reference pre-check and the delete.
func mapProfessorWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintProfessorEmail):
		return apperrors.ErrProfessorAlreadyExists
	case dberrors.IsForeignKeyViolation(err, dberrors.ConstraintClassProfessorFK):
		return apperrors.ErrProfessorHasClasses
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewIntegrityError(fmt.Sprintf("unexpected constraint violation: %s", dberrors.ConstraintName(err)))
	default:
		return err
	}
}
