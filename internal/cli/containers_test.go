package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

func TestContainers(t *testing.T) {
	t.Run("table marks the default", func(t *testing.T) {
		out, _, code := run(t, "containers")

		require.Equal(t, ExitOK, code)
		assert.Contains(t, out, "40ft-hc *")
		assert.Contains(t, out, "589 x 235 x 239")
	})

	t.Run("json", func(t *testing.T) {
		out, _, code := run(t, "containers", "--json")
		require.Equal(t, ExitOK, code)

		var resp struct {
			Containers []model.ContainerSpec `json:"containers"`
			DefaultID  string                `json:"default_id"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Len(t, resp.Containers, 3)
		assert.Equal(t, model.DefaultContainerID, resp.DefaultID)
	})
}

func TestConstraints(t *testing.T) {
	tests := []struct {
		lang       string
		wantLocale string
		fragile    string
	}{
		{"en", "en", "Fragile"},
		{"tr-TR", "tr", "Kırılgan"},
		{"fr", "en", "Fragile"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			out, _, code := run(t, "constraints", "--lang", tt.lang, "--json")
			require.Equal(t, ExitOK, code)

			var resp struct {
				Constraints []model.ConstraintInfo `json:"constraints"`
				Locale      string                 `json:"locale"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, tt.wantLocale, resp.Locale)
			require.Len(t, resp.Constraints, len(model.AllConstraints))
			for _, info := range resp.Constraints {
				if info.Type == model.ConstraintFragile {
					assert.Equal(t, tt.fragile, info.Label)
				}
			}
		})
	}

	t.Run("table", func(t *testing.T) {
		out, _, code := run(t, "constraints")

		require.Equal(t, ExitOK, code)
		assert.Contains(t, out, "must_be_on_top")
		assert.Contains(t, out, model.ConstraintFragile.Color())
	})
}
