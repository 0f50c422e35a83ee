package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rafaelbarros/gestao-cursos/internal/app/models/dto"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/apperrors"
)

// Field validation runs before any store access, so a service without
// repositories is enough to exercise the rejection paths.
func newUnbackedClassService() *ClassOfferingService {
	return NewClassOfferingService(nil, nil, nil, nil, nil, nil, zerolog.Nop())
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) || ce.Details["field"] != field {
		t.Errorf("error field = %v, want %q", ce.Details, field)
	}
}

func TestCreateClassOfferingRejectsBadFields(t *testing.T) {
	valid := func() *dto.CreateClassOfferingRequest {
		return &dto.CreateClassOfferingRequest{
			Code:      "ALG-2026-1",
			StartDate: "2026-02-01",
			EndDate:   "2026-06-30",
			Course:    &dto.EntityRef{ID: 1},
			Professor: &dto.EntityRef{ID: 1},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*dto.CreateClassOfferingRequest)
		wantField string
	}{
		{"blank code", func(r *dto.CreateClassOfferingRequest) { r.Code = "   " }, "code"},
		{"overlong code", func(r *dto.CreateClassOfferingRequest) { r.Code = strings.Repeat("A", 51) }, "code"},
		{"malformed start date", func(r *dto.CreateClassOfferingRequest) { r.StartDate = "01/02/2026" }, "startDate"},
		{"malformed end date", func(r *dto.CreateClassOfferingRequest) { r.EndDate = "2026-06-30T00:00:00Z" }, "endDate"},
	}

	svc := newUnbackedClassService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := svc.CreateClassOffering(context.Background(), req)
			assertFieldError(t, err, tt.wantField)
		})
	}
}

func TestUpdateClassOfferingRejectsOverlongCode(t *testing.T) {
	svc := newUnbackedClassService()
	req := &dto.UpdateClassOfferingRequest{
		Code:      strings.Repeat("A", 51),
		StartDate: "2026-02-01",
		EndDate:   "2026-06-30",
	}
	_, err := svc.UpdateClassOffering(context.Background(), 1, req)
	assertFieldError(t, err, "code")
}
