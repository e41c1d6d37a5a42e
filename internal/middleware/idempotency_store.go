package middleware

import (
	"container/list"
	"net/http"
	"sync"
	"time"
)

// Idempotency lookup results, also used as metric labels.
const (
	idemClaimed  = "claimed"
	idemReplayed = "replayed"
	idemInFlight = "in_flight"
	idemMismatch = "mismatch"
)

// DefaultIdempotencyCapacity bounds the number of remembered keys.
const DefaultIdempotencyCapacity = 10_000

type idempotencyRecord struct {
	key         string
	fingerprint [32]byte
	done        bool
	status      int
	header      http.Header
	body        []byte
	expiresAt   time.Time
}

// IdempotencyStore remembers responses by idempotency key.
// A key is claimed when its first request starts and completed once that request succeeds.
// When full, the oldest key is forgotten.
type IdempotencyStore struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	order    *list.List
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyStore creates a store and starts its expiry sweeper.
func NewIdempotencyStore(capacity int, ttl time.Duration) *IdempotencyStore {
	if capacity <= 0 {
		capacity = DefaultIdempotencyCapacity
	}
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	s := &IdempotencyStore{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go s.sweep()
	return s
}

// claim looks key up. Unless the result is idemClaimed, the returned record is a snapshot of the existing entry.
func (s *IdempotencyStore) claim(key string, fingerprint [32]byte, now time.Time) (idempotencyRecord, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.items[key]; ok {
		rec := el.Value.(*idempotencyRecord)
		switch {
		case now.After(rec.expiresAt):
			s.remove(el)
		case rec.fingerprint != fingerprint:
			return *rec, idemMismatch
		case !rec.done:
			return *rec, idemInFlight
		default:
			return *rec, idemReplayed
		}
	}

	for s.order.Len() >= s.capacity {
		s.remove(s.order.Back())
	}
	rec := &idempotencyRecord{key: key, fingerprint: fingerprint, expiresAt: now.Add(s.ttl)}
	s.items[key] = s.order.PushFront(rec)
	return idempotencyRecord{}, idemClaimed
}

// complete stores the response for a claimed key.
func (s *IdempotencyStore) complete(key string, status int, header http.Header, body []byte, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key]
	if !ok {
		return
	}
	rec := el.Value.(*idempotencyRecord)
	rec.done = true
	rec.status = status
	rec.header = header
	rec.body = body
	rec.expiresAt = now.Add(s.ttl)
}

// release forgets a claimed key so the caller can retry with it.
func (s *IdempotencyStore) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.items[key]; ok {
		s.remove(el)
	}
}

// Len returns the number of remembered keys, expired ones included.
func (s *IdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Stop ends the expiry sweeper. It is safe to call more than once.
func (s *IdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *IdempotencyStore) remove(el *list.Element) {
	s.order.Remove(el)
	delete(s.items, el.Value.(*idempotencyRecord).key)
}

func (s *IdempotencyStore) sweep() {
	ticker := time.NewTicker(min(s.ttl, time.Minute))
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.purgeExpired(now)
		case <-s.stopCh:
			return
		}
	}
}

func (s *IdempotencyStore) purgeExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for el := s.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*idempotencyRecord).expiresAt) {
			s.remove(el)
		}
		el = prev
	}
}
