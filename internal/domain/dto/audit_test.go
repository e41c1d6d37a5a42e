package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

func TestAuditQuery_Filter(t *testing.T) {
	since := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 10, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		query       AuditQuery
		want        model.LogFilter
		wantDetails []string
	}{
		{
			name:  "empty query",
			query: AuditQuery{},
			want:  model.LogFilter{},
		},
		{
			name: "all fields",
			query: AuditQuery{
				Kind:        model.KindAudit,
				Level:       "warn",
				Subject:     "dock-7",
				Action:      "manifest_pack",
				ContainerID: "40ft-hc",
				PathPrefix:  "/api/manifests",
				Since:       "2026-10-01T00:00:00Z",
				Until:       "2026-10-02T12:00:00Z",
				Limit:       20,
				Skip:        40,
			},
			want: model.LogFilter{
				Kind:        model.KindAudit,
				Level:       "warn",
				Subject:     "dock-7",
				Action:      "manifest_pack",
				ContainerID: "40ft-hc",
				PathPrefix:  "/api/manifests",
				Since:       &since,
				Until:       &until,
				Limit:       20,
				Skip:        40,
			},
		},
		{
			name:        "unknown kind",
			query:       AuditQuery{Kind: "debug"},
			wantDetails: []string{"kind"},
		},
		{
			name:        "negative paging",
			query:       AuditQuery{Limit: -1, Skip: -5},
			wantDetails: []string{"limit", "skip"},
		},
		{
			name:        "malformed timestamps",
			query:       AuditQuery{Since: "yesterday", Until: "2026-10-02"},
			wantDetails: []string{"since", "until"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Filter()
			if tt.wantDetails != nil {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				for _, field := range tt.wantDetails {
					assert.Contains(t, verr.Details, field)
				}
				assert.Len(t, verr.Details, len(tt.wantDetails))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
