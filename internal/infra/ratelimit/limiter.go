// Package ratelimit tracks per-client request budgets for the credential endpoints.
package ratelimit

import (
	"sync"
	"time"

	"vidtube/config"

	"golang.org/x/time/rate"
)

const (
	defaultBurst = 5
	defaultTTL   = 10 * time.Minute
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type keyedLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time

	// lastSweep bounds eviction to one pass per ttl.
	lastSweep time.Time
}

// NewLimiter builds a Limiter from config. A disabled limiter allows every request.
func NewLimiter(cfg *config.Config) Limiter {
	rl := cfg.RateLimit
	if rl == nil || !rl.Enabled {
		return allowAll{}
	}

	return newKeyedLimiter(rl.RequestsPerSecond, rl.Burst, rl.TTL, time.Now)
}

func newKeyedLimiter(perSecond float64, burst int, ttl time.Duration, now func() time.Time) *keyedLimiter {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &keyedLimiter{
		clients:   make(map[string]*client),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		ttl:       ttl,
		now:       now,
		lastSweep: now(),
	}
}

func (l *keyedLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}

	now := l.now()

	l.mu.Lock()
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	l.evictLocked(now)
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

func (l *keyedLimiter) evictLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.ttl {
		return
	}
	l.lastSweep = now

	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > l.ttl {
			delete(l.clients, key)
		}
	}
}

func (l *keyedLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.clients)
}

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }
