package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/rafaelbarros/gestao-cursos/internal/app/models"
	appRepos "github.com/rafaelbarros/gestao-cursos/internal/app/repositories"
)

// CreateDefaultData inserts a small starter catalog of courses and
// professors when the tables are empty of them. Every insert is idempotent
// so repeated startups are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	professorRepo := appRepos.NewProfessorRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Courses/Professors)...")
	var finalErr error

	defaultCourses := []*appModels.Course{
		{Name: "Algorithms", Description: "Design and analysis of algorithms", Hours: 80},
		{Name: "Databases", Description: "Relational modeling and SQL", Hours: 60},
	}
	for _, course := range defaultCourses {
		exists, err := courseRepo.ExistsByName(ctx, course.Name, 0)
		if err != nil {
			lgr.Error().Err(err).Str("course", course.Name).Msg("Error checking default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("course", course.Name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	defaultProfessors := []*appModels.Professor{
		{Name: "Alan Turing", Email: "alan.turing@example.edu", Specialization: "Computability"},
		{Name: "Ada Lovelace", Email: "ada.lovelace@example.edu", Specialization: "Programming"},
	}
	for _, professor := range defaultProfessors {
		exists, err := professorRepo.ExistsByEmail(ctx, professor.Email, 0)
		if err != nil {
			lgr.Error().Err(err).Str("professor", professor.Name).Msg("Error checking default professor")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := professorRepo.Create(ctx, professor); err != nil {
			lgr.Error().Err(err).Str("professor", professor.Name).Msg("Error creating default professor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
