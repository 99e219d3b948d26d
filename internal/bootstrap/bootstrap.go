package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/uniportal/internal/app/controllers"
	appRepos "github.com/yigit/uniportal/internal/app/repositories"
	appRoutes "github.com/yigit/uniportal/internal/app/routes"
	appServices "github.com/yigit/uniportal/internal/app/services"
	"github.com/yigit/uniportal/internal/config"
	"github.com/yigit/uniportal/internal/db"
	appMiddleware "github.com/yigit/uniportal/internal/middleware"
	"github.com/yigit/uniportal/internal/pkg/logger"
	"github.com/yigit/uniportal/internal/pkg/metrics"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store             *db.Adapter
	Repos             *appRepos.Repositories
	Metrics           *metrics.Manager
	ContentService    *appServices.ContentService
	InquiryService    *appServices.InquiryService
	StatusService     *appServices.StatusService
	ContentController *appControllers.ContentController
	InquiryController *appControllers.InquiryController
	StatusController  *appControllers.StatusController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml location.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := SetupLogger(cfg)
	return cfg, lgr, nil
}

// SetupLogger configures the global logger from cfg and returns it.
func SetupLogger(cfg *config.Config) zerolog.Logger {
	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return lgr
}

// SetupDatabase opens the document store. A store that cannot be reached
// leaves the adapter degraded rather than failing the boot.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) *db.Adapter {
	lgr.Info().Str("driver", cfg.DatabaseDriver()).Msg("Establishing database connection...")
	return db.Open(ctx, cfg, lgr)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *db.Adapter, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: store, Logger: lgr}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewManager()
	}

	deps.Repos = appRepos.NewRepositories(store)

	deps.ContentService = appServices.NewContentService(deps.Repos)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository, deps.Metrics, lgr)
	deps.StatusService = appServices.NewStatusService(store, deps.Repos, cfg, deps.Metrics, lgr)

	deps.ContentController = appControllers.NewContentController(deps.ContentService)
	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService)
	deps.StatusController = appControllers.NewStatusController(deps.StatusService)

	return deps
}

// SeedOnStartup runs demo seeding when configured. Failures are logged and
// do not stop the boot.
func SeedOnStartup(ctx context.Context, cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) {
	if !cfg.Seed.OnStartup {
		return
	}
	resp, err := deps.StatusService.Seed(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		return
	}
	lgr.Info().Str("status", resp.Status).Msg("Startup seeding finished")
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)

	if deps.Metrics != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	appRoutes.SetupRouter(router,
		deps.ContentController,
		deps.InquiryController,
		deps.StatusController,
	)

	return router
}
