package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadReference     = errors.New("referenced entity not found")

	// Integrity errors are store-level constraint violations that slipped
	// past the service pre-checks. They indicate a server-side bug and are
	// never retried.
	ErrIntegrity = errors.New("integrity violation")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrCPFAlreadyExists   = errors.New("student with this CPF already exists")
	ErrEmailAlreadyExists = errors.New("student with this email already exists")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this name already exists")
	ErrCourseHasClasses    = errors.New("course has class offerings and cannot be deleted")
)

// Professor errors
var (
	ErrProfessorNotFound      = errors.New("professor not found")
	ErrProfessorAlreadyExists = errors.New("professor with this email already exists")
	ErrProfessorHasClasses    = errors.New("professor has class offerings and cannot be deleted")
)

// Class offering errors
var (
	ErrClassNotFound   = errors.New("class offering not found")
	ErrClassCodeExists = errors.New("class offering with this code already exists")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this class")
	ErrNotEnrolled     = errors.New("student is not enrolled in this class")
)

// NewValidationError creates a new custom error for a malformed field value,
// naming the offending field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// NewBadReferenceError creates a new custom error for a foreign key that does
// not resolve to an existing record.
func NewBadReferenceError(message string) error {
	return &CustomError{
		Err:     ErrBadReference,
		Message: message,
	}
}

// NewIntegrityError wraps a store-level constraint violation.
func NewIntegrityError(message string) error {
	return &CustomError{
		Err:     ErrIntegrity,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
