package services

import (
	"errors"
	"testing"

	"github.com/rafaelbarros/gestao-cursos/internal/pkg/apperrors"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/dberrors"
)

func TestMapProfessorWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"duplicate email", uniqueViolation(dberrors.ConstraintProfessorEmail), apperrors.ErrProfessorAlreadyExists},
		{"referencing class blocks delete", fkViolation(dberrors.ConstraintClassProfessorFK), apperrors.ErrProfessorHasClasses},
		{"unexpected constraint", uniqueViolation("some_other_key"), apperrors.ErrIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapProfessorWriteError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("mapProfessorWriteError() = %v, want %v", got, tt.want)
			}
		})
	}
}
