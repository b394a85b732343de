package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/ams/internal/app/auth"
	appControllers "github.com/yigit/ams/internal/app/controllers"
	appMigrations "github.com/yigit/ams/internal/app/migrations"
	appRepos "github.com/yigit/ams/internal/app/repositories"
	appRoutes "github.com/yigit/ams/internal/app/routes"
	appServices "github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/config"
	"github.com/yigit/ams/internal/db"
	appMiddleware "github.com/yigit/ams/internal/middleware"
	pkgAuth "github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/filestorage"
	"github.com/yigit/ams/internal/pkg/helpers"
	"github.com/yigit/ams/internal/pkg/logger"
	"github.com/yigit/ams/internal/pkg/mail"
	"github.com/yigit/ams/internal/seed"
)

// DefaultConfigPath is used when no --config flag is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Tx             *db.TxManager
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	Mail           *mail.Dispatcher
	FileStorage    *filestorage.LocalStorage
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenDatabase establishes the connection pool.
func OpenDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// RunMigrations applies pending files from the configured migrations directory.
func RunMigrations(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(pool, lgr).MigrateFromDirectory(ctx, migrationsDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// SeedDefaults inserts the reference catalog.
func SeedDefaults(ctx context.Context, pool *pgxpool.Pool, lgr zerolog.Logger) error {
	return seed.CreateDefaultData(ctx, appRepos.NewCatalogRepository(pool), lgr)
}

// NewMailSender picks the delivery backend named by cfg.Mail.Provider.
func NewMailSender(cfg *config.Config, lgr zerolog.Logger) mail.Sender {
	from := mail.From{Name: cfg.Mail.FromName, Email: cfg.Mail.FromEmail}

	switch strings.ToLower(cfg.Mail.Provider) {
	case config.MailProviderSMTP:
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.SMTPUsername,
			Password: cfg.Mail.SMTPPassword,
			From:     from,
			UseTLS:   cfg.Mail.SMTPUseTLS,
		}, lgr)
	case config.MailProviderSendGrid:
		return mail.NewSendGridSender(cfg.Mail.SendGridAPIKey, from)
	default:
		return mail.NewLogSender(lgr)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Tx = db.NewTxManager(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.FacultyRepository)
	deps.Mail = mail.NewDispatcher(NewMailSender(cfg, lgr), mail.DispatcherConfig{
		Workers:     cfg.Mail.Workers,
		QueueSize:   cfg.Mail.QueueSize,
		SendTimeout: helpers.ParseDuration(cfg.Mail.SendTimeout, 30*time.Second),
	}, lgr.With().Str("component", "mail").Logger())

	r := deps.Repos
	loginURL := cfg.Mail.LoginURL

	authService := appServices.NewAuthService(r.CollegeRepository, r.FacultyRepository, r.StudentRepository, deps.JWTService, deps.Mail, lgr)
	catalogService := appServices.NewCatalogService(r.CollegeRepository, r.CatalogRepository, deps.Tx, deps.AuthzService, lgr)
	subjectService := appServices.NewSubjectService(r.CatalogRepository, r.SubjectRepository, deps.Tx, deps.AuthzService, deps.FileStorage, lgr)
	facultyService := appServices.NewFacultyService(r.CollegeRepository, r.CatalogRepository, r.FacultyRepository, deps.AuthzService, deps.Mail, loginURL, lgr)
	studentService := appServices.NewStudentService(r.CollegeRepository, r.CatalogRepository, r.StudentRepository, deps.Tx, deps.AuthzService, deps.Mail, loginURL, lgr)
	assignmentService := appServices.NewAssignmentService(r.CatalogRepository, r.SubjectRepository, r.FacultyRepository, r.AssignmentRepository, deps.AuthzService, lgr)
	attendanceService := appServices.NewAttendanceService(r.CatalogRepository, r.SubjectRepository, r.StudentRepository,
		r.AssignmentRepository, r.AttendanceRepository, deps.Tx, deps.AuthzService, deps.Mail, lgr)
	legacyService := appServices.NewLegacyRegistrationService(r.LegacyRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(authService, lgr),
		Catalog:    appControllers.NewCatalogController(catalogService),
		Faculty:    appControllers.NewFacultyController(facultyService),
		Student:    appControllers.NewStudentController(studentService),
		Subject:    appControllers.NewSubjectController(subjectService),
		Assignment: appControllers.NewAssignmentController(assignmentService),
		Attendance: appControllers.NewAttendanceController(attendanceService),
		Legacy:     appControllers.NewLegacyController(legacyService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))
	router.MaxMultipartMemory = appControllers.MaxUploadSize

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
