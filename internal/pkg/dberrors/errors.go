package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Named constraints from migrations/001_init.sql. The services decode
// constraint hits back into domain conflicts through these names.
const (
	ConstraintStudentCPF       = "students_cpf_key"
	ConstraintStudentEmail     = "students_email_key"
	ConstraintCourseName       = "courses_name_key"
	ConstraintProfessorEmail   = "professors_email_key"
	ConstraintClassCode        = "class_offerings_code_key"
	ConstraintEnrollmentPair   = "class_enrollments_pkey"
	ConstraintClassCourseFK    = "class_offerings_course_id_fkey"
	ConstraintClassProfessorFK = "class_offerings_professor_id_fkey"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation checks if the error is any PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key
// violation, optionally for a specific constraint.
func IsForeignKeyViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}

// ConstraintName extracts the constraint name from a PostgreSQL error, or
// returns an empty string when the error is not a constraint violation.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
