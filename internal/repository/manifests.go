package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// ManifestDocument is a saved cargo list bound to a container.
type ManifestDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	ContainerID string             `bson:"container_id" json:"container_id"`
	Items       []model.ItemSpec   `bson:"items" json:"items"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	CreatedBy   string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// ManifestsRepository stores saved manifests.
type ManifestsRepository struct {
	collection *mongo.Collection
}

// NewManifestsRepository creates a new manifests repository.
func NewManifestsRepository(db *MongoDB) *ManifestsRepository {
	return &ManifestsRepository{
		collection: db.Manifests,
	}
}

// Create inserts a manifest, assigning its id and creation time.
func (r *ManifestsRepository) Create(ctx context.Context, m *ManifestDocument) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, m)
	return err
}

// Get returns a manifest by id, or nil when none exists.
func (r *ManifestsRepository) Get(ctx context.Context, id primitive.ObjectID) (*ManifestDocument, error) {
	var doc ManifestDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns the newest manifests first. The item lists are not loaded.
func (r *ManifestsRepository) List(ctx context.Context, limit int) ([]ManifestDocument, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"items": 0})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []ManifestDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Delete removes a manifest. It reports whether a document was removed.
func (r *ManifestsRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
