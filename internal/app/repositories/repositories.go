package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code runs
// against the pool or inside a transaction.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository       *StudentRepository
	CourseRepository        *CourseRepository
	ProfessorRepository     *ProfessorRepository
	ClassOfferingRepository *ClassOfferingRepository
	EnrollmentRepository    *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:       NewStudentRepository(db),
		CourseRepository:        NewCourseRepository(db),
		ProfessorRepository:     NewProfessorRepository(db),
		ClassOfferingRepository: NewClassOfferingRepository(db),
		EnrollmentRepository:    NewEnrollmentRepository(db),
	}
}
