//go:build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/guttosm/cargo-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// openTestDB connects to the shared container with a database named after the test.
// The connection is closed when the test ends.
func openTestDB(t *testing.T) *MongoDB {
	t.Helper()

	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})
	return db
}
