package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// ContainerDocument is a stored custom container definition.
type ContainerDocument struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Length    float64   `bson:"length" json:"length"`
	Width     float64   `bson:"width" json:"width"`
	Height    float64   `bson:"height" json:"height"`
	MaxWeight float64   `bson:"max_weight" json:"max_weight"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	Version   int       `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// Spec converts the document into the domain container.
func (d ContainerDocument) Spec() model.ContainerSpec {
	return model.ContainerSpec{
		ID:        d.ID,
		Name:      d.Name,
		Length:    d.Length,
		Width:     d.Width,
		Height:    d.Height,
		MaxWeight: d.MaxWeight,
		Color:     d.Color,
	}
}

// ContainersRepository stores custom container definitions.
type ContainersRepository struct {
	collection *mongo.Collection
}

// NewContainersRepository creates a new containers repository.
func NewContainersRepository(db *MongoDB) *ContainersRepository {
	return &ContainersRepository{
		collection: db.Containers,
	}
}

// Get returns the container with the given id, or nil when none exists.
func (r *ContainersRepository) Get(ctx context.Context, id string) (*ContainerDocument, error) {
	var doc ContainerDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns all stored containers ordered by name.
func (r *ContainersRepository) List(ctx context.Context) ([]ContainerDocument, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []ContainerDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Upsert creates or replaces a container definition, bumping its version.
func (r *ContainersRepository) Upsert(ctx context.Context, spec model.ContainerSpec, updatedBy string) (*ContainerDocument, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":       spec.Name,
			"length":     spec.Length,
			"width":      spec.Width,
			"height":     spec.Height,
			"max_weight": spec.MaxWeight,
			"color":      spec.Color,
			"updated_at": now,
			"updated_by": updatedBy,
		},
		"$inc":         bson.M{"version": 1},
		"$setOnInsert": bson.M{"created_at": now},
	}

	var doc ContainerDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": spec.ID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a container. It reports whether a document was removed.
func (r *ContainersRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
