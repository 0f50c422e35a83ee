package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rafaelbarros/gestao-cursos/internal/app/models"
)

func sampleClassOffering() *models.ClassOffering {
	birthDate := time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)
	return &models.ClassOffering{
		ID:          7,
		Code:        "ALG-2026-1",
		StartDate:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		CourseID:    1,
		ProfessorID: 2,
		Course: &models.Course{
			ID:          1,
			Name:        "Algorithms",
			Description: "Design and analysis of algorithms",
			Hours:       80,
		},
		Professor: &models.Professor{
			ID:             2,
			Name:           "Alan Turing",
			Email:          "alan.turing@example.edu",
			Specialization: "Computability",
		},
		Students: []*models.Student{
			{ID: 3, Name: "Ada Lovelace", CPF: "12345678901", Email: "ada@example.edu", BirthDate: &birthDate},
		},
	}
}

func TestNewClassOfferingDetailResponse(t *testing.T) {
	detail := NewClassOfferingDetailResponse(sampleClassOffering())

	if detail.ID != 7 || detail.Code != "ALG-2026-1" {
		t.Errorf("unexpected identity fields: id=%d code=%q", detail.ID, detail.Code)
	}
	if detail.StartDate != "2026-02-01" || detail.EndDate != "2026-06-30" {
		t.Errorf("unexpected dates: start=%q end=%q", detail.StartDate, detail.EndDate)
	}
	if detail.Course == nil || detail.Course.Name != "Algorithms" {
		t.Errorf("course not resolved: %+v", detail.Course)
	}
	if detail.Professor == nil || detail.Professor.Name != "Alan Turing" {
		t.Errorf("professor not resolved: %+v", detail.Professor)
	}
	if len(detail.Students) != 1 || detail.Students[0].Name != "Ada Lovelace" {
		t.Errorf("unexpected roster: %+v", detail.Students)
	}
	if detail.Students[0].BirthDate == nil || *detail.Students[0].BirthDate != "1815-12-10" {
		t.Errorf("unexpected birth date: %v", detail.Students[0].BirthDate)
	}
}

// The detail payload embeds the roster, and each student in it must carry no
// class list of their own. A back-reference would make the payload recursive.
func TestDetailResponseHasNoBackReferences(t *testing.T) {
	detail := NewClassOfferingDetailResponse(sampleClassOffering())

	raw, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	payload := string(raw)
	if strings.Count(payload, `"students"`) != 1 {
		t.Errorf("expected exactly one roster in payload, got: %s", payload)
	}
	if strings.Contains(payload, `"classes"`) {
		t.Errorf("student views must not reference classes, got: %s", payload)
	}

	// Round-trip to make sure nested entities survived intact
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	students, ok := decoded["students"].([]any)
	if !ok || len(students) != 1 {
		t.Fatalf("expected one student in payload, got %v", decoded["students"])
	}
	student := students[0].(map[string]any)
	if _, found := student["students"]; found {
		t.Error("student view must not nest a roster")
	}
}

func TestDetailResponseEmptyRoster(t *testing.T) {
	class := sampleClassOffering()
	class.Students = nil

	detail := NewClassOfferingDetailResponse(class)
	if detail.Students == nil {
		t.Fatal("roster must be empty, not nil")
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"students":[]`) {
		t.Errorf("expected empty roster array in payload, got: %s", raw)
	}
}

func TestNewClassOfferingListResponseOmitsRoster(t *testing.T) {
	views := NewClassOfferingListResponse([]*models.ClassOffering{sampleClassOffering()})
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	raw, err := json.Marshal(views)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"students"`) {
		t.Errorf("list view must not carry a roster, got: %s", raw)
	}
	if !strings.Contains(string(raw), `"Algorithms"`) {
		t.Errorf("list view must resolve the course, got: %s", raw)
	}
}

func TestNewClassOfferingResponseUnresolvedRelations(t *testing.T) {
	class := sampleClassOffering()
	class.Course = nil
	class.Professor = nil

	view := NewClassOfferingResponse(class)
	if view.Course != nil || view.Professor != nil {
		t.Errorf("unresolved relations must stay nil: %+v", view)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"course"`) || strings.Contains(string(raw), `"professor"`) {
		t.Errorf("nil relations must be omitted from the payload, got: %s", raw)
	}
}
