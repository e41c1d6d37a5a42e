//go:build integration

// Package testutil starts MongoDB testcontainers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultMongoImage is used unless CARGO_TEST_MONGO_IMAGE names another image.
const DefaultMongoImage = "mongo:7.0"

// maxDBNameLen keeps generated names under MongoDB's 63 byte database name limit.
const maxDBNameLen = 63

// MongoDBContainer is a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a dedicated MongoDB container.
// Packages with many integration tests should share one through SetupTestMainWithMongoDB.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := os.Getenv("CARGO_TEST_MONGO_IMAGE")
	if image == "" {
		image = DefaultMongoImage
	}

	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container %s: %w", image, err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}

var (
	shared   *MongoDBContainer
	sharedMu sync.RWMutex
	dbSeq    atomic.Uint64
)

// SetupTestMainWithMongoDB starts one container for the whole package, runs the tests
// and tears the container down. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := SetupMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration tests need Docker: %v\n", err)
		return 1
	}

	sharedMu.Lock()
	shared = container
	sharedMu.Unlock()

	code := m.Run()

	sharedMu.Lock()
	shared = nil
	sharedMu.Unlock()

	cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := container.Cleanup(cleanupCtx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the package's shared container.
// It panics outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if shared == nil {
		panic("shared MongoDB container not started; call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a unique, valid MongoDB database name.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, testName)

	suffix := fmt.Sprintf("_%d_%d", time.Now().UnixNano()%1_000_000, dbSeq.Add(1))
	if limit := maxDBNameLen - len(suffix); len(name) > limit {
		name = name[:limit]
	}
	return name + suffix
}

// DropDatabase removes name from the server at uri.
func DropDatabase(ctx context.Context, uri, name string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	return client.Database(name).Drop(ctx)
}

// FreshDatabase reserves a database name for t on the shared container and
// drops it when t ends.
func FreshDatabase(t testing.TB) (uri, name string) {
	t.Helper()

	uri = GetSharedContainerURI()
	name = SanitizeDBName(t.Name())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := DropDatabase(ctx, uri, name); err != nil {
			t.Logf("drop %s: %v", name, err)
		}
	})
	return uri, name
}
