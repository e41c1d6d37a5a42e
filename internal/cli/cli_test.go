package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes cargoctl with args and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := Execute(root, args)
	return stdout.String(), stderr.String(), code
}

// writeFile creates name with content in a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		check    func(*testing.T, string)
	}{
		{
			name:     "unknown command",
			args:     []string{"unload"},
			wantCode: ExitFailure,
			check: func(t *testing.T, stderr string) {
				assert.True(t, strings.HasPrefix(stderr, "Error: "))
			},
		},
		{
			name:     "json error output",
			args:     []string{"pack", "missing.yaml", "--json"},
			wantCode: ExitFailure,
			check: func(t *testing.T, stderr string) {
				var resp struct {
					Error struct {
						Message string `json:"message"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal([]byte(stderr), &resp))
				assert.Contains(t, resp.Error.Message, "failed to open manifest")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := run(t, tt.args...)

			assert.Equal(t, tt.wantCode, code)
			if tt.check != nil {
				tt.check(t, stderr)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	stdout, _, code := run(t, "--version")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "dev (commit: none, built: unknown)")
}
