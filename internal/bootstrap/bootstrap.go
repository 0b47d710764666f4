package bootstrap

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	appServices "github.com/nandaardian19/studentprofile/internal/app/services"
	"github.com/nandaardian19/studentprofile/internal/config"
	pkgAuth "github.com/nandaardian19/studentprofile/internal/pkg/auth"
	"github.com/nandaardian19/studentprofile/internal/pkg/helpers"
	"github.com/nandaardian19/studentprofile/internal/pkg/logger"
	"github.com/nandaardian19/studentprofile/internal/pkg/validation"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService appServices.UserService // Interface type
	Config      *config.Config
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Logs go to logOutput, or stderr when nil.
func LoadConfigAndSetupLogger(configPath, envFile string, logOutput io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath, envFile)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Output: logOutput,
	})

	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the validator, hasher, clock and services.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Config: cfg, Logger: lgr}

	clock := helpers.ClockForYear(cfg.Profile.CurrentYear)
	if cfg.Profile.CurrentYear > 0 {
		lgr.Debug().Int("year", cfg.Profile.CurrentYear).Msg("Using pinned current year")
	}

	hasher := pkgAuth.NewHasher(cfg.Export.BcryptCost)
	lgr.Debug().Int("bcryptCost", hasher.Cost()).Bool("passwordDigest", cfg.Export.IncludePasswordDigest).Msg("Export configured")

	deps.UserService = appServices.NewUserService(
		validation.NewStructValidator(),
		hasher,
		clock,
		appServices.UserServiceOptions{IncludePasswordDigest: cfg.Export.IncludePasswordDigest},
		lgr.With().Str("component", "user").Logger(),
	)

	return deps
}
