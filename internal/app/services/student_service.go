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

// StudentService handles student-related operations
type StudentService struct {
	pool        *pgxpool.Pool
	studentRepo *repositories.StudentRepository
	classRepo   *repositories.ClassOfferingRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(pool *pgxpool.Pool, studentRepo *repositories.StudentRepository, classRepo *repositories.ClassOfferingRepository) *StudentService {
	return &StudentService{
		pool:        pool,
		studentRepo: studentRepo,
		classRepo:   classRepo,
	}
}

// validateStudent validates student data before database operations
func validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student", "student is required")
	}

	if validation.IsBlank(student.Name) {
		return apperrors.NewValidationError("name", "name cannot be empty")
	}

	if len(student.Name) > validation.NameMaxLength {
		return apperrors.NewValidationError("name", "name is too long")
	}

	if !validation.IsValidCPF(student.CPF) {
		return apperrors.NewValidationError("cpf", "CPF must contain exactly 11 digits")
	}

	if !validation.IsValidEmail(student.Email) {
		return apperrors.NewValidationError("email", "email is invalid")
	}

	return nil
}

// CreateStudent creates a new student. The uniqueness pre-checks and the
// insert share one transaction so a concurrent writer of the same CPF or
// email is rejected by the unique index rather than slipping past the check.
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.studentRepo.WithTx(tx)

		exists, err := repo.ExistsByCPF(ctx, student.CPF, 0)
		if err != nil {
			return fmt.Errorf("error checking CPF: %w", err)
		}
		if exists {
			return apperrors.ErrCPFAlreadyExists
		}

		exists, err = repo.ExistsByEmail(ctx, student.Email, 0)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}

		return repo.Create(ctx, student)
	})

	return mapStudentWriteError(err)
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	return student, nil
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentClasses retrieves all class offerings a student is enrolled in
func (s *StudentService) GetStudentClasses(ctx context.Context, id int64) ([]*models.ClassOffering, error) {
	exists, err := s.studentRepo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	classes, err := s.classRepo.GetByStudentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student classes: %w", err)
	}
	return classes, nil
}

// UpdateStudent updates an existing student. The record's own id is excluded
// from the uniqueness checks so a student is never blocked by itself.
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.studentRepo.WithTx(tx)

		existing, err := repo.GetByID(ctx, student.ID)
		if err != nil {
			return fmt.Errorf("error retrieving student: %w", err)
		}
		if existing == nil {
			return apperrors.ErrStudentNotFound
		}

		exists, err := repo.ExistsByCPF(ctx, student.CPF, student.ID)
		if err != nil {
			return fmt.Errorf("error checking CPF: %w", err)
		}
		if exists {
			return apperrors.ErrCPFAlreadyExists
		}

		exists, err = repo.ExistsByEmail(ctx, student.Email, student.ID)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}

		// A payload without a birth date keeps the stored one.
		if student.BirthDate == nil {
			student.BirthDate = existing.BirthDate
		}

		return repo.Update(ctx, student)
	})

	return mapStudentWriteError(err)
}

// DeleteStudent deletes a student by ID. Enrollment rows referencing the
// student are removed with it; the class offerings survive.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// mapStudentWriteError decodes unique-index hits that raced past the
// pre-checks into the same conflicts the pre-checks produce.
func mapStudentWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintStudentCPF):
		return apperrors.ErrCPFAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintStudentEmail):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewIntegrityError(fmt.Sprintf("unexpected constraint violation: %s", dberrors.ConstraintName(err)))
	default:
		return err
	}
}
