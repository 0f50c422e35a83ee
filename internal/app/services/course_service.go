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

// CourseService handles course-related operations
type CourseService struct {
	pool       *pgxpool.Pool
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(pool *pgxpool.Pool, courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{
		pool:       pool,
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course", "course is required")
	}

	if validation.IsBlank(course.Name) {
		return apperrors.NewValidationError("name", "name cannot be empty")
	}

	if validation.IsBlank(course.Description) {
		return apperrors.NewValidationError("description", "description cannot be empty")
	}

	if course.Hours < 1 {
		return apperrors.NewValidationError("hours", "hours must be at least 1")
	}

	return nil
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.courseRepo.WithTx(tx)

		exists, err := repo.ExistsByName(ctx, course.Name, 0)
		if err != nil {
			return fmt.Errorf("error checking course name: %w", err)
		}
		if exists {
			return apperrors.ErrCourseAlreadyExists
		}

		return repo.Create(ctx, course)
	})

	return mapCourseWriteError(err)
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.courseRepo.WithTx(tx)

		existing, err := repo.GetByID(ctx, course.ID)
		if err != nil {
			return fmt.Errorf("error retrieving course: %w", err)
		}
		if existing == nil {
			return apperrors.ErrCourseNotFound
		}

		exists, err := repo.ExistsByName(ctx, course.Name, course.ID)
		if err != nil {
			return fmt.Errorf("error checking course name: %w", err)
		}
		if exists {
			return apperrors.ErrCourseAlreadyExists
		}

		return repo.Update(ctx, course)
	})

	return mapCourseWriteError(err)
}

// DeleteCourse deletes a course by ID. A course still referenced by a class
// offering is not deleted; callers must remove or repoint the offerings
// first.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.courseRepo.WithTx(tx)

		referenced, err := repo.HasClassOfferings(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking course references: %w", err)
		}
		if referenced {
			return apperrors.ErrCourseHasClasses
		}

		if err := repo.Delete(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error deleting course: %w", err)
		}
		return nil
	})

	return mapCourseWriteError(err)
}

// mapCourseWriteError decodes constraint hits that raced past the
// pre-checks: a duplicate name on create/update, or a class offering created
// between the reference pre-check and the delete.
func mapCourseWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintCourseName):
		return apperrors.ErrCourseAlreadyExists
	case dberrors.IsForeignKeyViolation(err, dberrors.ConstraintClassCourseFK):
		return apperrors.ErrCourseHasClasses
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewIntegrityError(fmt.Sprintf("unexpected constraint violation: %s", dberrors.ConstraintName(err)))
	default:
		return err
	}
}
