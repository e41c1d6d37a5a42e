package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogsRepository stores access and audit entries in the logs collection.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

func stamp(entry *model.LogEntry, now time.Time) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}
}

// Create inserts one entry.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	stamp(entry, time.Now())
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts a batch without stopping at the first failed document.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]any, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		stamp(entry, now)
		docs = append(docs, entry)
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// logFilter translates f into a query document.
func logFilter(f model.LogFilter) bson.M {
	filter := bson.M{}
	for field, value := range map[string]string{
		"kind":         f.Kind,
		"level":        f.Level,
		"subject":      f.Subject,
		"action":       f.Action,
		"container_id": f.ContainerID,
		"manifest_id":  f.ManifestID,
		"request_id":   f.RequestID,
	} {
		if value != "" {
			filter[field] = value
		}
	}
	if f.PathPrefix != "" {
		filter["path"] = bson.M{"$regex": "^" + regexp.QuoteMeta(f.PathPrefix)}
	}
	if f.Since != nil || f.Until != nil {
		window := bson.M{}
		if f.Since != nil {
			window["$gte"] = *f.Since
		}
		if f.Until != nil {
			window["$lte"] = *f.Until
		}
		filter["timestamp"] = window
	}
	return filter
}

// Query returns one page of matching entries, newest first.
func (r *LogsRepository) Query(ctx context.Context, f model.LogFilter) ([]model.LogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(f.Limit)).
		SetSkip(int64(f.Skip))

	cursor, err := r.collection.Find(ctx, logFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]model.LogEntry, 0, f.Limit)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of entries matching f. Paging is ignored.
func (r *LogsRepository) Count(ctx context.Context, f model.LogFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(f))
}
