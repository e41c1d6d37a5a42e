// Package config provides configuration management for the cargo service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is the placeholder signing key used when JWT_SECRET_KEY is unset.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Packing  PackingConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port       string
	RateLimit  int
	RateWindow time.Duration
	// RateBurst is the token bucket size. Zero uses RateLimit.
	RateBurst      int
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	// IdempotencyTTL is how long a response is replayed for a repeated Idempotency-Key.
	IdempotencyTTL      time.Duration
	IdempotencyCapacity int
}

// CacheConfig holds the packing result cache configuration.
// Shards > 1 selects the sharded cache.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	// APIKeys are accepted verbatim.
	APIKeys map[string]bool
	// APIKeyHashes are bcrypt hashes of accepted keys.
	APIKeyHashes   []string
	JWTSecretKey   string
	JWTIssuer      string
	AccessTokenTTL time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
	// Audit log writer
	AuditQueueSize     int
	AuditBatchSize     int
	AuditFlushInterval time.Duration
}

// PackingConfig holds packing engine limits and defaults.
type PackingConfig struct {
	DefaultContainer string
	// MaxUnits caps the expanded unit count of a single pack request.
	MaxUnits int
}

// LogConfig holds the global logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:                getEnv("PORT", "8080"),
			RateLimit:           getEnvInt("RATE_LIMIT", 100),
			RateWindow:          getEnvDuration("RATE_WINDOW", time.Minute),
			RateBurst:           getEnvInt("RATE_BURST", 0),
			RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:         parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:         getEnv("SWAGGER_USER", ""),
			SwaggerPass:         getEnv("SWAGGER_PASS", ""),
			IdempotencyTTL:      getEnvDuration("IDEMPOTENCY_TTL", 5*time.Minute),
			IdempotencyCapacity: getEnvInt("IDEMPOTENCY_CAPACITY", 10000),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 1000),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 1),
		},
		Auth: AuthConfig{
			Enabled:        getEnvBool("AUTH_ENABLED", false),
			APIKeys:        parseAPIKeys(os.Getenv("API_KEYS")),
			APIKeyHashes:   parseList(os.Getenv("API_KEY_HASHES"), ";"),
			JWTSecretKey:   getEnv("JWT_SECRET_KEY", DefaultJWTSecret),
			JWTIssuer:      getEnv("JWT_ISSUER", "cargo-service"),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "cargo_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
			AuditQueueSize:                 getEnvInt("AUDIT_QUEUE_SIZE", 2048),
			AuditBatchSize:                 getEnvInt("AUDIT_BATCH_SIZE", 64),
			AuditFlushInterval:             getEnvDuration("AUDIT_FLUSH_INTERVAL", 500*time.Millisecond),
		},
		Packing: PackingConfig{
			DefaultContainer: getEnv("DEFAULT_CONTAINER", "40ft-hc"),
			MaxUnits:         getEnvInt("MAX_UNITS", 5000),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits s on sep and drops blank entries.
func parseList(s, sep string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	keys := parseList(s, ",")
	if keys == nil {
		return nil
	}
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		result[k] = true
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
	}
	return append(defaults, parseList(s, ",")...)
}
