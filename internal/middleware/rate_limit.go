package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	// defaultNumShards is the default number of shards for the rate limiter.
	defaultNumShards = 16
	// minIdleTTL is the shortest time an idle caller's bucket is kept.
	minIdleTTL = 3 * time.Minute
)

// DefaultRouteCosts weights the routes that pack cargo or render documents.
// Every other route costs one token.
func DefaultRouteCosts() map[string]int {
	return map[string]int{
		"/api/cargo/pack":           2,
		"/api/cargo/pack/report":    5,
		"/api/manifests/:id/pack":   2,
		"/api/manifests/:id/report": 5,
		"/api/manifests/import":     3,
	}
}

// visitor is one caller's token bucket.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter keeps a token bucket per caller. Buckets hold rate tokens and refill
// at rate per window. Buckets are spread over shards to reduce lock contention.
type RateLimiter struct {
	shards   []*rateLimiterShard
	limit    rate.Limit
	burst    int
	window   time.Duration
	idleTTL  time.Duration
	costs    map[string]int
	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimiterOption customizes a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithBurst sets the bucket size. It defaults to the request rate.
func WithBurst(burst int) RateLimiterOption {
	return func(rl *RateLimiter) {
		if burst > 0 {
			rl.burst = burst
		}
	}
}

// WithRouteCosts charges more than one token for the given route templates.
func WithRouteCosts(costs map[string]int) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.costs = costs
	}
}

// NewRateLimiter allows requests per window to each caller.
func NewRateLimiter(requests int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	rl := &RateLimiter{
		shards:  make([]*rateLimiterShard, defaultNumShards),
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   requests,
		window:  window,
		idleTTL: max(2*window, minIdleTTL),
		stopCh:  make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// cost returns the tokens charged for route, capped at the bucket size.
func (rl *RateLimiter) cost(route string) int {
	n, ok := rl.costs[route]
	if !ok || n < 1 {
		return 1
	}
	return min(n, rl.burst)
}

// take charges n tokens to identifier. When denied it reports how long until they are available.
func (rl *RateLimiter) take(identifier string, n int, now time.Time) (allowed bool, remaining int, retryAfter time.Duration) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	v, ok := shard.visitors[identifier]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		shard.visitors[identifier] = v
	}
	v.lastSeen = now

	r := v.limiter.ReserveN(now, n)
	if !r.OK() {
		return false, 0, rl.window
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, int(v.limiter.TokensAt(now)), delay
	}
	return true, int(v.limiter.TokensAt(now)), 0
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.admit(c, "ip", "ip:"+c.ClientIP())
	}
}

// SubjectRateLimit returns a middleware that limits requests per authenticated subject.
// Anonymous callers are limited by IP.
func (rl *RateLimiter) SubjectRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.admit(c, "subject", callerIdentity(c))
	}
}

func (rl *RateLimiter) admit(c *gin.Context, scope, identifier string) {
	allowed, remaining, retryAfter := rl.take(identifier, rl.cost(c.FullPath()), time.Now())

	c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(max(remaining, 0)))

	if !allowed {
		metrics.RecordRateLimited(scope)
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		abortWithKey(c, http.StatusTooManyRequests, dto.ErrCodeRateLimit, i18n.ErrKeyRateLimitExceeded)
		return
	}

	c.Next()
}

// callerIdentity returns the authenticated subject, otherwise the client IP.
func callerIdentity(c *gin.Context) string {
	if subject := GetSubject(c); subject != "" {
		return "sub:" + subject
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.cleanupIdle(now)
		case <-rl.stopCh:
			return
		}
	}
}

// cleanupIdle forgets callers not seen for idleTTL. Their next request starts with a full bucket.
func (rl *RateLimiter) cleanupIdle(now time.Time) {
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastSeen) > rl.idleTTL {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked callers, overall and per shard.
func (rl *RateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
