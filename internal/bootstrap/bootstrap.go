package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafaelbarros/gestao-cursos/docs" // Import generated swagger docs
	appControllers "github.com/rafaelbarros/gestao-cursos/internal/app/controllers"
	appMigrations "github.com/rafaelbarros/gestao-cursos/internal/app/migrations"
	appRepos "github.com/rafaelbarros/gestao-cursos/internal/app/repositories"
	appRoutes "github.com/rafaelbarros/gestao-cursos/internal/app/routes"
	appServices "github.com/rafaelbarros/gestao-cursos/internal/app/services"
	"github.com/rafaelbarros/gestao-cursos/internal/config"
	"github.com/rafaelbarros/gestao-cursos/internal/db"
	appMiddleware "github.com/rafaelbarros/gestao-cursos/internal/middleware"
	"github.com/rafaelbarros/gestao-cursos/internal/pkg/logger"
	"github.com/rafaelbarros/gestao-cursos/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService      *appServices.StudentService
	CourseService       *appServices.CourseService
	ProfessorService    *appServices.ProfessorService
	ClassService        *appServices.ClassOfferingService
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	ProfessorController *appControllers.ProfessorController
	ClassController     *appControllers.ClassOfferingController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Seeding is best-effort; startup proceeds with whatever exists.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StudentService = appServices.NewStudentService(dbPool, deps.Repos.StudentRepository, deps.Repos.ClassOfferingRepository)
	deps.CourseService = appServices.NewCourseService(dbPool, deps.Repos.CourseRepository)
	deps.ProfessorService = appServices.NewProfessorService(dbPool, deps.Repos.ProfessorRepository)
	deps.ClassService = appServices.NewClassOfferingService(
		dbPool,
		deps.Repos.ClassOfferingRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ProfessorRepository,
		deps.Repos.StudentRepository,
		deps.Repos.EnrollmentRepository,
		lgr,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.ClassController = appControllers.NewClassOfferingController(deps.ClassService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
		deps.ProfessorController,
		deps.ClassController,
	)

	return router
}
