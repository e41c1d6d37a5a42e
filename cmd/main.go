// Package main is the entry point for the cargo-service application.
//
// @title           Cargo Service API
// @version         1.0.0
// @description     API for planning 3D container loads.
//
//	The service places boxes into shipping containers under handling constraints and renders load reports.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/cargo-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Access token issued by /api/auth/token, prefixed with "Bearer ".
//
// @tag.name        Cargo
// @tag.description Load planning and manual plan edits
//
// @tag.name        Containers
// @tag.description Container catalog and constraint legend
//
// @tag.name        Manifests
// @tag.description Saved shipment manifests
//
// @tag.name        Auth
// @tag.description Access token issuance
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/guttosm/cargo-service/docs" // swagger docs

	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithWriteTimeout(2*cfg.Server.RequestTimeout+5*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := server.Run(ctx)
	stop()

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if closeErr := application.Close(closeCtx); closeErr != nil {
		log.Error().Err(closeErr).Msg("Shutdown cleanup failed")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
