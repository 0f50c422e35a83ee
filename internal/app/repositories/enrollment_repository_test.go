package repositories

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type rosterRow struct {
	id        int64
	name      string
	cpf       string
	email     string
	birthDate *time.Time
}

// fakeRosterRows feeds canned roster rows through the pgx.Rows interface.
type fakeRosterRows struct {
	rows []rosterRow
	idx  int
}

func (r *fakeRosterRows) Close()                                       {}
func (r *fakeRosterRows) Err() error                                   { return nil }
func (r *fakeRosterRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRosterRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRosterRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRosterRows) RawValues() [][]byte                          { return nil }
func (r *fakeRosterRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRosterRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *fakeRosterRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	*dest[0].(*int64) = row.id
	*dest[1].(*string) = row.name
	*dest[2].(*string) = row.cpf
	*dest[3].(*string) = row.email
	nt := dest[4].(*sql.NullTime)
	if row.birthDate != nil {
		*nt = sql.NullTime{Time: *row.birthDate, Valid: true}
	} else {
		*nt = sql.NullTime{}
	}
	return nil
}

type fakeRosterDB struct {
	rows    pgx.Rows
	gotSQL  string
	gotArgs []any
}

func (d *fakeRosterDB) Query(ctx context.Context, sqlStr string, args ...any) (pgx.Rows, error) {
	d.gotSQL = sqlStr
	d.gotArgs = args
	return d.rows, nil
}

func (d *fakeRosterDB) QueryRow(ctx context.Context, sqlStr string, args ...any) pgx.Row {
	return nil
}

func (d *fakeRosterDB) Exec(ctx context.Context, sqlStr string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func TestGetStudentsByClassID(t *testing.T) {
	birthDate := time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)
	db := &fakeRosterDB{rows: &fakeRosterRows{rows: []rosterRow{
		{id: 1, name: "Ada Lovelace", cpf: "12345678901", email: "ada@example.com", birthDate: &birthDate},
		{id: 2, name: "Alan Turing", cpf: "98765432100", email: "alan@example.com"},
	}}}

	repo := NewEnrollmentRepository(db)
	students, err := repo.GetStudentsByClassID(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetStudentsByClassID() error = %v", err)
	}

	if len(students) != 2 {
		t.Fatalf("got %d students, want 2", len(students))
	}
	if students[0].BirthDate == nil || !students[0].BirthDate.Equal(birthDate) {
		t.Errorf("first student birth date = %v, want %v", students[0].BirthDate, birthDate)
	}
	if students[1].BirthDate != nil {
		t.Errorf("second student birth date = %v, want nil", students[1].BirthDate)
	}
	if students[0].Name != "Ada Lovelace" || students[1].CPF != "98765432100" {
		t.Errorf("unexpected scanned fields: %+v, %+v", students[0], students[1])
	}

	if !strings.Contains(db.gotSQL, "class_enrollments") {
		t.Errorf("query does not touch the join table: %s", db.gotSQL)
	}
	if len(db.gotArgs) != 1 || db.gotArgs[0] != int64(9) {
		t.Errorf("query args = %v, want [9]", db.gotArgs)
	}
}

func TestGetStudentsByClassIDEmptyRoster(t *testing.T) {
	db := &fakeRosterDB{rows: &fakeRosterRows{}}

	repo := NewEnrollmentRepository(db)
	students, err := repo.GetStudentsByClassID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetStudentsByClassID() error = %v", err)
	}
	if len(students) != 0 {
		t.Errorf("got %d students, want 0", len(students))
	}
}
