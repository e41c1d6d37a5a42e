package app

import (
	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/logger"
	"github.com/rs/zerolog/log"
)

// InitializeLogger installs the global logger from cfg.Log.
func InitializeLogger(cfg config.Config) {
	level := logger.Configure(logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})
	log.Info().
		Str("level", level.String()).
		Bool("mongodb", cfg.Database.Enabled).
		Bool("auth", cfg.Auth.Enabled).
		Str("default_container", cfg.Packing.DefaultContainer).
		Msg("Logger initialized")
}
