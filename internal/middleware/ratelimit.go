package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NickolasCage52/School-MVP/internal/pkg/response"
)

// RateLimiter is a sliding-window counter keyed by client identity. It sits
// in front of the lead intake endpoint, on top of (not instead of) the
// per-telegram-user limit inside the intake pipeline.
type RateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	window time.Duration
	max    int
	now    func() time.Time
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		hits:   make(map[string][]time.Time),
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it stays under the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	kept := rl.hits[key][:0]
	for _, t := range rl.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= rl.max {
		rl.hits[key] = kept
		return false
	}

	rl.hits[key] = append(kept, now)
	return true
}

// Middleware rejects over-limit clients with 429, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			response.AbortError(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
