package middleware

import (
	"bytes"
	"crypto/sha256"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/metrics"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a completed response is replayed.
	IdempotencyKeyTTL = 5 * time.Minute

	maxIdempotencyKeyLen = 255
)

// replayedHeaders are the response headers stored with a completed request.
var replayedHeaders = []string{"Content-Type", "Content-Disposition"}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store   *IdempotencyStore
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled config with a fresh store.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Store:   NewIdempotencyStore(DefaultIdempotencyCapacity, IdempotencyKeyTTL),
		Enabled: true,
	}
}

// Idempotency replays the first successful response for a repeated Idempotency-Key.
//
// Keys are scoped to the caller, the method and the path. Reusing a key with a different
// body is rejected with 422, and a repeat that arrives while the first request is still
// running gets 409. Failed requests release their key.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	store := cfg.Store

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			abortWithKey(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidIdempotency)
			return
		}

		fingerprint, err := bodyFingerprint(c.Request)
		if err != nil {
			abortWithKey(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}

		storeKey := callerIdentity(c) + "\x00" + c.Request.Method + "\x00" + c.Request.URL.Path + "\x00" + key
		rec, result := store.claim(storeKey, fingerprint, time.Now())
		metrics.RecordIdempotency(result)

		switch result {
		case idemReplayed:
			for name, values := range rec.header {
				for _, v := range values {
					c.Writer.Header().Add(name, v)
				}
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(rec.status, rec.header.Get("Content-Type"), rec.body)
			c.Abort()
			return
		case idemInFlight:
			c.Header("Retry-After", "1")
			abortWithKey(c, http.StatusConflict, dto.ErrCodeConflict, i18n.ErrKeyIdempotencyInFlight)
			return
		case idemMismatch:
			abortWithKey(c, http.StatusUnprocessableEntity, dto.ErrCodeIdempotencyMismatch, i18n.ErrKeyIdempotencyMismatch)
			return
		}

		writer := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = writer
		defer func() {
			if r := recover(); r != nil {
				store.release(storeKey)
				panic(r)
			}
		}()

		c.Next()

		status := writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			store.release(storeKey)
			return
		}
		header := make(http.Header, len(replayedHeaders))
		for _, name := range replayedHeaders {
			if v := writer.Header().Get(name); v != "" {
				header.Set(name, v)
			}
		}
		store.complete(storeKey, status, header, writer.body.Bytes(), time.Now())
	}
}

// bodyFingerprint hashes the request body and leaves it readable for the handler.
func bodyFingerprint(req *http.Request) ([32]byte, error) {
	if req.Body == nil {
		return sha256.Sum256(nil), nil
	}
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return [32]byte{}, err
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))
	return sha256.Sum256(raw), nil
}

// bodyCapture tees the response body into a buffer.
type bodyCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
