package cli

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// generatedKeys is the output of the keys command.
type generatedKeys struct {
	JWTSecretKey string `json:"jwt_secret_key"`
	APIKey       string `json:"api_key"`
	APIKeyHash   string `json:"api_key_hash"`
}

func newKeysCommand(global *globalFlags) *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate a JWT signing secret and an API key",
		Long: `Generate a random JWT signing secret and API key. The key is also printed
as a bcrypt hash for API_KEY_HASHES, so the plain key never has to be stored
in the service's environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := generateKeys(rand.Reader, cost)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if global.json {
				return writeJSON(out, keys)
			}

			fmt.Fprintln(out, "# JWT Configuration")
			fmt.Fprintf(out, "JWT_SECRET_KEY=%s\n", keys.JWTSecretKey)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "# Hand this key to the client")
			fmt.Fprintf(out, "# %s\n", keys.APIKey)
			fmt.Fprintln(out, "API_KEY_HASHES="+keys.APIKeyHash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost for the API key hash")
	return cmd
}

func generateKeys(r io.Reader, cost int) (*generatedKeys, error) {
	secret := make([]byte, 32)
	if _, err := io.ReadFull(r, secret); err != nil {
		return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	key := make([]byte, 24)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	apiKey := base64.RawURLEncoding.EncodeToString(key)
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash API key: %w", err)
	}

	return &generatedKeys{
		JWTSecretKey: base64.StdEncoding.EncodeToString(secret),
		APIKey:       apiKey,
		APIKeyHash:   string(hash),
	}, nil
}
