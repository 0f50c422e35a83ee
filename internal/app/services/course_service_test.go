package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/apperrors"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/dberrors"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func fkViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

func TestMapCourseWriteError(t *testing.T) {
	passthrough := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"duplicate name", uniqueViolation(dberrors.ConstraintCourseName), apperrors.ErrCourseAlreadyExists},
		{"referencing class blocks delete", fkViolation(dberrors.ConstraintClassCourseFK), apperrors.ErrCourseHasClasses},
		{"unrelated error passes through", passthrough, passthrough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapCourseWriteError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("mapCourseWriteError() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A FK hit that reaches the mapper wrapped, the way the delete path wraps
// repository errors, must still decode to the conflict sentinel.
func TestMapCourseWriteErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("error deleting course: %w", fkViolation(dberrors.ConstraintClassCourseFK))
	if got := mapCourseWriteError(err); !errors.Is(got, apperrors.ErrCourseHasClasses) {
		t.Errorf("mapCourseWriteError() = %v, want ErrCourseHasClasses", got)
	}
}

func TestMapCourseWriteErrorUnexpectedConstraint(t *testing.T) {
	got := mapCourseWriteError(uniqueViolation("some_other_key"))
	if !errors.Is(got, apperrors.ErrIntegrity) {
		t.Errorf("mapCourseWriteError() = %v, want ErrIntegrity", got)
	}
}
