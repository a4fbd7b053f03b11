package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pradyuprasad/tp/config"
	"github.com/pradyuprasad/tp/internal/delivery/cli"
	"github.com/pradyuprasad/tp/internal/infrastructure/cache"
	"github.com/pradyuprasad/tp/internal/infrastructure/database"
	"github.com/pradyuprasad/tp/internal/repository"
	"github.com/pradyuprasad/tp/internal/service"
	"github.com/pradyuprasad/tp/internal/usecase"
	"github.com/pradyuprasad/tp/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Commands    service.CommandService
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context, envFile string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log, err := setupLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	app.Log = log
	log.WithField("env", cfg.App.Env).Debug("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.WithField("driver", cfg.Storage.Driver).Debug("Storage ready")

	// Initialize Redis; history falls back to memory when it is not configured
	history := service.NewMemoryHistoryStore(cfg.History.Limit)
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		history = service.NewRedisHistoryStore(redisClient, log, cfg.History.Limit)
		log.Debug("Redis connected successfully")
	}

	// Initialize all layers
	personRepo := repository.NewPersonRepository()
	book := usecase.NewAddressBookUsecase(db, log, personRepo, validator.NewValidator())
	if err := book.Load(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}
	app.Commands = service.NewCommandService(log, book, history)

	return app, nil
}

// setupLogger configures a logrus logger writing to out
func setupLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)

	return log, nil
}

// RunREPL reads commands from in until exit or end of input
func (app *App) RunREPL(ctx context.Context, in io.Reader, out io.Writer) error {
	return cli.NewREPL(app.Commands, app.Log, in, out).Run(ctx)
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
