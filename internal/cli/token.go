package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/service"
)

func newTokenCommand(global *globalFlags) *cobra.Command {
	var (
		subject string
		scopes  []string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token with the service's signing key",
		Long: `Mint a bearer token signed with JWT_SECRET_KEY, the same key the service
validates against. Scopes default to all scopes.

Examples:
  JWT_SECRET_KEY=... cargoctl token --subject dock-7
  cargoctl token --subject dock-7 --scope cargo:pack --ttl 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.TokenRequest{Subject: subject, Scopes: scopes}
			if err := req.Validate(); err != nil {
				return exitErr(ExitInvalid, err)
			}

			auth := config.Load().Auth
			if auth.JWTSecretKey == config.DefaultJWTSecret {
				zerolog.Ctx(cmd.Context()).Warn().Msg("Signing with the default JWT secret; set JWT_SECRET_KEY")
			}

			tokens := service.NewTokenService(service.NewTokenConfigFromAuthConfig(auth))
			token, err := tokens.Issue(req.Subject, req.Scopes, ttl)
			if err != nil {
				if errors.Is(err, service.ErrSigningKeyNotConfigured) {
					return exitErr(ExitInvalid, fmt.Errorf("%w: set JWT_SECRET_KEY", err))
				}
				return err
			}

			if global.json {
				return writeJSON(cmd.OutOrStdout(), token)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Token subject")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "Granted scope, repeatable (default: all scopes)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default: JWT_ACCESS_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
