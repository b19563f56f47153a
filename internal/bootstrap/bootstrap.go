package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	appControllers "github.com/yigit/uniregistry/internal/app/controllers"
	"github.com/yigit/uniregistry/internal/app/models"
	appRoutes "github.com/yigit/uniregistry/internal/app/routes"
	appServices "github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/config"
	appMiddleware "github.com/yigit/uniregistry/internal/middleware"
	"github.com/yigit/uniregistry/internal/pkg/logger"
	"github.com/yigit/uniregistry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	University        *models.University
	RegistryService   appServices.RegistryService // Interface type
	FacultyController *appControllers.FacultyController
	StudentController *appControllers.StudentController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath, envFile string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath, envFile)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.PrettyLogs(),
	})

	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies creates the university, seeds it when configured and wires the services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.University = models.NewUniversity(cfg.University.Name)
	deps.RegistryService = appServices.NewRegistryService(deps.University, lgr)

	if cfg.University.SeedFile != "" {
		data, err := seed.Load(cfg.University.SeedFile)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.University.SeedFile).Msg("Failed to load seed file")
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
		if err := seed.CreateDefaultData(deps.RegistryService, data, lgr); err != nil {
			// partial seed data is still usable
			lgr.Error().Err(err).Msg("Failed to create some seed data, proceeding anyway...")
		}
	}

	deps.FacultyController = appControllers.NewFacultyController(deps.RegistryService)
	deps.StudentController = appControllers.NewStudentController(deps.RegistryService)

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
	// match on the escaped path so faculty names may contain "/" (sent as %2F)
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.CORSOrigins()))
	if cfg.Server.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
		router.Use(appMiddleware.RateLimit(limiter))
		lgr.Info().Int("rps", cfg.Server.RateLimit).Int("burst", cfg.Server.RateBurst).Msg("Rate limiting enabled")
	}

	appRoutes.SetupRouter(router, deps.FacultyController, deps.StudentController)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
