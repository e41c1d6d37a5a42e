// Package app provides service initialization.
package app

import (
	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Packer *service.CargoPackerService
	// Tokens is nil when no signing secret is configured.
	Tokens service.TokenService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	packer := service.NewCargoPackerService(packerOptions(cfg.Cache, cfg.Packing)...)

	components := &ServiceComponents{Packer: packer}

	switch cfg.Auth.JWTSecretKey {
	case "":
		log.Info().Msg("JWT secret not set, token endpoint disabled")
	case config.DefaultJWTSecret:
		log.Warn().Msg("Using the default JWT secret; set JWT_SECRET_KEY in production")
		fallthrough
	default:
		components.Tokens = service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg.Auth))
	}

	return components
}

func packerOptions(cache config.CacheConfig, packing config.PackingConfig) []service.Option {
	var opts []service.Option

	switch {
	case cache.Size > 0 && cache.Shards > 1:
		opts = append(opts, service.WithShardedCache(cache.Size, cache.TTL, cache.Shards))
	case cache.Size > 0:
		opts = append(opts, service.WithCache(cache.Size, cache.TTL))
	}

	if packing.MaxUnits > 0 {
		opts = append(opts, service.WithMaxUnits(packing.MaxUnits))
	}

	return opts
}
