//go:build !integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsStoreFailure(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"cancelled", context.Canceled, false},
		{"wrapped cancel", fmt.Errorf("list: %w", context.Canceled), false},
		{"no documents", mongo.ErrNoDocuments, false},
		{"duplicate key", dup, false},
		{"deadline", context.DeadlineExceeded, true},
		{"client disconnected", mongo.ErrClientDisconnected, true},
		{"anything else", errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStoreFailure(tt.err))
		})
	}
}

func TestIsCommandError(t *testing.T) {
	err := fmt.Errorf("collMod: %w", mongo.CommandError{Code: 27, Name: "IndexNotFound"})

	assert.True(t, isCommandError(err, "NamespaceNotFound", "IndexNotFound"))
	assert.False(t, isCommandError(err, "IndexOptionsConflict"))
	assert.False(t, isCommandError(errors.New("IndexNotFound"), "IndexNotFound"))
	assert.False(t, isCommandError(nil, "IndexNotFound"))
}

func TestMongoConfig_ClientOptions(t *testing.T) {
	opts := DefaultMongoConfig().clientOptions("mongodb://localhost:27017")

	assert.Equal(t, uint64(25), *opts.MaxPoolSize)
	assert.Equal(t, uint64(2), *opts.MinPoolSize)
	assert.Equal(t, 5*time.Second, *opts.ServerSelectionTimeout)
	assert.Equal(t, []string{"zstd", "snappy", "zlib"}, opts.Compressors)
	assert.Equal(t, "cargo-service", *opts.AppName)
	assert.True(t, *opts.RetryWrites)

	bare := MongoConfig{}.clientOptions("mongodb://localhost:27017")
	assert.Nil(t, bare.MaxPoolSize)
	assert.Empty(t, bare.Compressors)
	assert.Nil(t, bare.AppName)
}
