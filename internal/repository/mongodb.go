// Package repository stores custom containers, manifests and the audit log in MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionContainers = "containers"
	CollectionManifests  = "manifests"
	CollectionLogs       = "logs"
)

// logsTTLIndex expires log entries. SetLogsTTL owns it.
const logsTTLIndex = "logs_ttl"

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	// EnableCompression negotiates zstd, snappy or zlib on the wire.
	EnableCompression bool
	AppName           string
}

// DefaultMongoConfig returns the connection settings used by the service.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            25,
		MinPoolSize:            2,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
		AppName:                "cargo-service",
	}
}

func (c MongoConfig) clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxConnIdleTime(c.MaxConnIdleTime).
		SetRetryWrites(true).
		SetRetryReads(true)
	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(c.MaxPoolSize)
	}
	if c.MinPoolSize > 0 {
		opts.SetMinPoolSize(c.MinPoolSize)
	}
	if c.ConnectTimeout > 0 {
		opts.SetConnectTimeout(c.ConnectTimeout)
	}
	if c.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(c.ServerSelectionTimeout)
	}
	if c.SocketTimeout > 0 {
		opts.SetSocketTimeout(c.SocketTimeout)
	}
	if c.EnableCompression {
		opts.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
	if c.AppName != "" {
		opts.SetAppName(c.AppName)
	}
	return opts
}

// indexes lists the secondary indexes each collection needs, by name.
var indexes = map[string][]mongo.IndexModel{
	CollectionContainers: {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("name")},
	},
	CollectionManifests: {
		{
			Keys:    bson.D{{Key: "container_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("container_recent"),
		},
	},
	CollectionLogs: {
		{Keys: bson.D{{Key: "request_id", Value: 1}}, Options: options.Index().SetName("request")},
		{
			Keys:    bson.D{{Key: "subject", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("subject_recent"),
		},
		{
			Keys:    bson.D{{Key: "container_id", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("container_recent"),
		},
		{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "action", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("kind_action_recent"),
		},
	},
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client     *mongo.Client
	Database   *mongo.Database
	Containers *mongo.Collection
	Manifests  *mongo.Collection
	Logs       *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures the indexes. The client is
// disconnected again when any step fails.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultMongoConfig().ConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions(uri))
	if err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:     client,
		Database:   db,
		Containers: db.Collection(CollectionContainers),
		Manifests:  db.Collection(CollectionManifests),
		Logs:       db.Collection(CollectionLogs),
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	for name, models := range indexes {
		if _, err := m.Database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

// SetLogsTTL sets how long log entries live. A non-positive ttl keeps them forever.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		_, err := m.Logs.Indexes().DropOne(ctx, logsTTLIndex)
		if isCommandError(err, "IndexNotFound", "NamespaceNotFound") {
			return nil
		}
		return err
	}

	seconds := int32(ttl / time.Second)
	err := m.Database.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: CollectionLogs},
		{Key: "index", Value: bson.D{
			{Key: "name", Value: logsTTLIndex},
			{Key: "expireAfterSeconds", Value: seconds},
		}},
	}).Err()
	if !isCommandError(err, "IndexNotFound", "NamespaceNotFound") {
		return err
	}

	_, err = m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetName(logsTTLIndex).SetExpireAfterSeconds(seconds),
	})
	return err
}

func isCommandError(err error, names ...string) bool {
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	for _, name := range names {
		if cmdErr.Name == name {
			return true
		}
	}
	return false
}

// IsStoreFailure reports whether err means the database itself is unhealthy.
// Caller mistakes such as duplicate keys and cancelled requests are not.
func IsStoreFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled),
		errors.Is(err, mongo.ErrNoDocuments),
		mongo.IsDuplicateKeyError(err):
		return false
	}
	return true
}

// Counts returns the estimated document count of each collection.
func (m *MongoDB) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, 3)
	for name, coll := range map[string]*mongo.Collection{
		CollectionContainers: m.Containers,
		CollectionManifests:  m.Manifests,
		CollectionLogs:       m.Logs,
	} {
		n, err := coll.EstimatedDocumentCount(ctx)
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary within two seconds.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
