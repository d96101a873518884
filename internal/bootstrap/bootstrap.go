package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/schoolregistry/internal/app/controllers"
	appMigrations "github.com/yigit/schoolregistry/internal/app/migrations"
	appRepos "github.com/yigit/schoolregistry/internal/app/repositories"
	appRoutes "github.com/yigit/schoolregistry/internal/app/routes"
	appServices "github.com/yigit/schoolregistry/internal/app/services"
	"github.com/yigit/schoolregistry/internal/config"
	"github.com/yigit/schoolregistry/internal/db"
	appMiddleware "github.com/yigit/schoolregistry/internal/middleware"
	"github.com/yigit/schoolregistry/internal/pkg/cache"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	Services           *appServices.Services
	StudentController  *appControllers.StudentController
	EmployeeController *appControllers.EmployeeController
	HealthController   *appControllers.HealthController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and applies the schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	return database, nil
}

// SetupCache connects the lookup-key cache when Redis is enabled.
// A nil client and nil cache mean lookups always read the database.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, appRepos.KeyCache, error) {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis lookup cache disabled")
		return nil, nil, nil
	}

	ttl, err := time.ParseDuration(cfg.Redis.LookupTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis lookup ttl: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to redis")
		return nil, nil, err
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Redis lookup cache enabled")
	return client, cache.NewLookupCache(client, ttl), nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(pool db.Pool, keyCache appRepos.KeyCache, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(pool, keyCache)
	deps.Services = appServices.NewServices(deps.Repos)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.Services.EmployeeService)
	deps.HealthController = appControllers.NewHealthController(pool)

	return deps
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
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.EmployeeController,
		deps.HealthController,
	)

	return router
}
