package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models/dto"
	"github.com/rafaelbarros/gestao-cursos/internal/app/repositories"
	"github.com/rafaelbarros/gestao-cursos/internal/db"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/apperrors"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/dberrors"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/helpers"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/validation"
)

// ClassOfferingService owns the class offering lifecycle and the enrollment
// relation: reference resolution before association, code uniqueness, the
// per-class serialization of roster edits, and the cycle-free detail views.
type ClassOfferingService struct {
	pool           *pgxpool.Pool
	classRepo      *repositories.ClassOfferingRepository
	courseRepo     *repositories.CourseRepository
	professorRepo  *repositories.ProfessorRepository
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewClassOfferingService creates a new ClassOfferingService
func NewClassOfferingService(
	pool *pgxpool.Pool,
	classRepo *repositories.ClassOfferingRepository,
	courseRepo *repositories.CourseRepository,
	professorRepo *repositories.ProfessorRepository,
	studentRepo *repositories.StudentRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *ClassOfferingService {
	return &ClassOfferingService{
		pool:           pool,
		classRepo:      classRepo,
		courseRepo:     courseRepo,
		professorRepo:  professorRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// CreateClassOffering creates a new class offering. Both references must
// resolve before anything is written; the resolution, the code uniqueness
// check and the insert share one transaction, so a failed reference leaves no
// partial row behind.
func (s *ClassOfferingService) CreateClassOffering(ctx context.Context, req *dto.CreateClassOfferingRequest) (*dto.ClassOfferingDetailResponse, error) {
	class := &models.ClassOffering{Code: req.Code}

	if validation.IsBlank(class.Code) {
		return nil, apperrors.NewValidationError("code", "code cannot be empty")
	}
	if len(class.Code) > validation.ClassCodeMaxLength {
		return nil, apperrors.NewValidationError("code", "code cannot exceed 50 characters")
	}

	var err error
	if class.StartDate, err = helpers.ParseDate(req.StartDate); err != nil {
		return nil, apperrors.NewValidationError("startDate", "startDate must be a date in YYYY-MM-DD format")
	}
	if class.EndDate, err = helpers.ParseDate(req.EndDate); err != nil {
		return nil, apperrors.NewValidationError("endDate", "endDate must be a date in YYYY-MM-DD format")
	}

	var detail *dto.ClassOfferingDetailResponse
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		// Only the ids inside the nested reference payloads are trusted;
		// the stored records are the authoritative versions.
		course, err := s.courseRepo.WithTx(tx).GetByID(ctx, req.Course.ID)
		if err != nil {
			return fmt.Errorf("error resolving course: %w", err)
		}
		if course == nil {
			return apperrors.NewBadReferenceError(fmt.Sprintf("Course not found with ID: %d", req.Course.ID))
		}

		professor, err := s.professorRepo.WithTx(tx).GetByID(ctx, req.Professor.ID)
		if err != nil {
			return fmt.Errorf("error resolving professor: %w", err)
		}
		if professor == nil {
			return apperrors.NewBadReferenceError(fmt.Sprintf("Professor not found with ID: %d", req.Professor.ID))
		}

		classRepo := s.classRepo.WithTx(tx)
		exists, err := classRepo.ExistsByCode(ctx, class.Code, 0)
		if err != nil {
			return fmt.Errorf("error checking class code: %w", err)
		}
		if exists {
			return apperrors.ErrClassCodeExists
		}

		class.CourseID = course.ID
		class.ProfessorID = professor.ID

		if err := classRepo.Create(ctx, class); err != nil {
			return err
		}

		// Re-read inside the same transaction so the returned view reflects
		// exactly what was persisted, store-assigned id included.
		detail, err = s.buildDetail(ctx, tx, class.ID)
		return err
	})
	if err != nil {
		return nil, mapClassWriteError(err)
	}

	s.logger.Info().Int64("classId", detail.ID).Str("code", detail.Code).Msg("Class offering created")
	return detail, nil
}

// GetClassOfferingByID retrieves the detail view of a class offering
func (s *ClassOfferingService) GetClassOfferingByID(ctx context.Context, id int64) (*dto.ClassOfferingDetailResponse, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class offering: %w", err)
	}
	if class == nil {
		return nil, apperrors.ErrClassNotFound
	}

	students, err := s.enrollmentRepo.GetStudentsByClassID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roster: %w", err)
	}
	class.Students = students

	view := dto.NewClassOfferingDetailResponse(class)
	return &view, nil
}

// GetAllClassOfferings retrieves list views of all class offerings, course
// and professor resolved, rosters omitted.
func (s *ClassOfferingService) GetAllClassOfferings(ctx context.Context) ([]dto.ClassOfferingResponse, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class offerings: %w", err)
	}
	return dto.NewClassOfferingListResponse(classes), nil
}

// GetClassStudents retrieves the roster of a class offering
func (s *ClassOfferingService) GetClassStudents(ctx context.Context, classID int64) ([]dto.StudentResponse, error) {
	exists, err := s.classRepo.ExistsByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error checking class offering: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrClassNotFound
	}

	students, err := s.enrollmentRepo.GetStudentsByClassID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roster: %w", err)
	}
	return dto.NewStudentListResponse(students), nil
}

// UpdateClassOffering updates an existing class offering. References omitted
// from the payload keep their stored values; supplied references must
// resolve. All checks and the write share one transaction.
func (s *ClassOfferingService) UpdateClassOffering(ctx context.Context, id int64, req *dto.UpdateClassOfferingRequest) (*dto.ClassOfferingDetailResponse, error) {
	if validation.IsBlank(req.Code) {
		return nil, apperrors.NewValidationError("code", "code cannot be empty")
	}
	if len(req.Code) > validation.ClassCodeMaxLength {
		return nil, apperrors.NewValidationError("code", "code cannot exceed 50 characters")
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate", "startDate must be a date in YYYY-MM-DD format")
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate", "endDate must be a date in YYYY-MM-DD format")
	}

	var detail *dto.ClassOfferingDetailResponse
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		classRepo := s.classRepo.WithTx(tx)

		existing, err := classRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error retrieving class offering: %w", err)
		}
		if existing == nil {
			return apperrors.ErrClassNotFound
		}

		exists, err := classRepo.ExistsByCode(ctx, req.Code, id)
		if err != nil {
			return fmt.Errorf("error checking class code: %w", err)
		}
		if exists {
			return apperrors.ErrClassCodeExists
		}

		// Unspecified references stay as stored; they are never nulled out
		// by a partial payload.
		courseID := existing.CourseID
		if req.Course != nil {
			course, err := s.courseRepo.WithTx(tx).GetByID(ctx, req.Course.ID)
			if err != nil {
				return fmt.Errorf("error resolving course: %w", err)
			}
			if course == nil {
				return apperrors.NewBadReferenceError(fmt.Sprintf("Course not found with ID: %d", req.Course.ID))
			}
			courseID = course.ID
		}

		professorID := existing.ProfessorID
		if req.Professor != nil {
			professor, err := s.professorRepo.WithTx(tx).GetByID(ctx, req.Professor.ID)
			if err != nil {
				return fmt.Errorf("error resolving professor: %w", err)
			}
			if professor == nil {
				return apperrors.NewBadReferenceError(fmt.Sprintf("Professor not found with ID: %d", req.Professor.ID))
			}
			professorID = professor.ID
		}

		updated := &models.ClassOffering{
			ID:          id,
			Code:        req.Code,
			StartDate:   startDate,
			EndDate:     endDate,
			CourseID:    courseID,
			ProfessorID: professorID,
		}

		if err := classRepo.Update(ctx, updated); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrClassNotFound
			}
			return err
		}

		detail, err = s.buildDetail(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, mapClassWriteError(err)
	}

	return detail, nil
}

// DeleteClassOffering deletes a class offering. The cascade removes the
// enrollment rows; the students are untouched.
func (s *ClassOfferingService) DeleteClassOffering(ctx context.Context, id int64) error {
	err := s.classRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("error deleting class offering: %w", err)
	}

	s.logger.Info().Int64("classId", id).Msg("Class offering deleted")
	return nil
}

// Enroll adds a student to a class offering's roster. The class row is
// locked for the duration of the transaction so two concurrent enrolls on
// the same class cannot drop each other's membership row. Enrolling an
// already-enrolled student is a conflict, not a no-op.
func (s *ClassOfferingService) Enroll(ctx context.Context, classID, studentID int64) (*dto.ClassOfferingDetailResponse, error) {
	s.logger.Debug().
		Int64("classId", classID).
		Int64("studentId", studentID).
		Msg("Enrolling student")

	var detail *dto.ClassOfferingDetailResponse
	var enrollment *models.Enrollment
	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		locked, err := s.classRepo.WithTx(tx).LockForUpdate(ctx, classID)
		if err != nil {
			return fmt.Errorf("error locking class offering: %w", err)
		}
		if !locked {
			return apperrors.ErrClassNotFound
		}

		exists, err := s.studentRepo.WithTx(tx).ExistsByID(ctx, studentID)
		if err != nil {
			return fmt.Errorf("error checking student: %w", err)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}

		enrollmentRepo := s.enrollmentRepo.WithTx(tx)
		enrolled, err := enrollmentRepo.IsEnrolled(ctx, classID, studentID)
		if err != nil {
			return fmt.Errorf("error checking enrollment: %w", err)
		}
		if enrolled {
			return apperrors.ErrAlreadyEnrolled
		}

		if enrollment, err = enrollmentRepo.Add(ctx, classID, studentID); err != nil {
			return err
		}

		detail, err = s.buildDetail(ctx, tx, classID)
		return err
	})
	if err != nil {
		return nil, mapClassWriteError(err)
	}

	s.logger.Info().
		Int64("classId", classID).
		Int64("studentId", studentID).
		Time("enrolledAt", enrollment.EnrolledAt).
		Msg("Student enrolled")
	return detail, nil
}

// Unenroll removes a student from a class offering's roster. Unenrolling a
// student who is not a member is reported as not found so callers detect
// stale state.
func (s *ClassOfferingService) Unenroll(ctx context.Context, classID, studentID int64) (*dto.ClassOfferingDetailResponse, error) {
	s.logger.Debug().
		Int64("classId", classID).
		Int64("studentId", studentID).
		Msg("Unenrolling student")

	var detail *dto.ClassOfferingDetailResponse
	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		locked, err := s.classRepo.WithTx(tx).LockForUpdate(ctx, classID)
		if err != nil {
			return fmt.Errorf("error locking class offering: %w", err)
		}
		if !locked {
			return apperrors.ErrClassNotFound
		}

		exists, err := s.studentRepo.WithTx(tx).ExistsByID(ctx, studentID)
		if err != nil {
			return fmt.Errorf("error checking student: %w", err)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}

		enrollmentRepo := s.enrollmentRepo.WithTx(tx)
		if err := enrollmentRepo.Remove(ctx, classID, studentID); err != nil {
			if errors.Is(err, repositories.ErrNoEnrollment) {
				return apperrors.ErrNotEnrolled
			}
			return err
		}

		detail, err = s.buildDetail(ctx, tx, classID)
		return err
	})
	if err != nil {
		return nil, mapClassWriteError(err)
	}

	s.logger.Info().
		Int64("classId", classID).
		Int64("studentId", studentID).
		Msg("Student unenrolled")
	return detail, nil
}

// buildDetail re-reads the class offering and its roster through the given
// transaction and assembles the cycle-free detail view. Every
// association-changing write goes through here instead of reusing an
// in-memory copy.
func (s *ClassOfferingService) buildDetail(ctx context.Context, tx pgx.Tx, classID int64) (*dto.ClassOfferingDetailResponse, error) {
	class, err := s.classRepo.WithTx(tx).GetByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error re-reading class offering: %w", err)
	}
	if class == nil {
		return nil, apperrors.ErrClassNotFound
	}

	students, err := s.enrollmentRepo.WithTx(tx).GetStudentsByClassID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error re-reading roster: %w", err)
	}
	class.Students = students

	view := dto.NewClassOfferingDetailResponse(class)
	return &view, nil
}

// mapClassWriteError decodes constraint hits that raced past the pre-checks.
func mapClassWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintClassCode):
		return apperrors.ErrClassCodeExists
	case dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintEnrollmentPair):
		return apperrors.ErrAlreadyEnrolled
	case dberrors.IsForeignKeyViolation(err, dberrors.ConstraintClassCourseFK):
		return apperrors.NewBadReferenceError("Course reference no longer exists")
	case dberrors.IsForeignKeyViolation(err, dberrors.ConstraintClassProfessorFK):
		return apperrors.NewBadReferenceError("Professor reference no longer exists")
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewIntegrityError(fmt.Sprintf("unexpected constraint violation: %s", dberrors.ConstraintName(err)))
	default:
		return err
	}
}
