package middleware

import (
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mert/facesmash/internal/app/models/dto"
	"github.com/mert/facesmash/internal/metrics"
)

// RateLimiter bounds request volume per client within a trailing time window.
// It is a single-process approximation: state lives in memory and is not
// shared across instances. Constructed once in bootstrap and passed into the
// router.
type RateLimiter struct {
	window time.Duration
	max    int

	mu      sync.Mutex
	clients map[string][]time.Time

	// now is stubbed in tests
	now func() time.Time
}

// NewRateLimiter creates a rate limiter admitting max requests per client per
// trailing window.
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		clients: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records a request attempt for the client and reports whether it may
// proceed. When the limit is hit, retryAfter is the number of whole seconds
// until the oldest surviving request leaves the window, and the attempt is
// not recorded.
func (rl *RateLimiter) Allow(client string) (retryAfter int, ok bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	windowStart := now.Add(-rl.window)

	// Lazily evict expired timestamps across the whole map so idle clients
	// don't pin memory.
	for key, timestamps := range rl.clients {
		surviving := keepAfter(timestamps, windowStart)
		if len(surviving) == 0 {
			delete(rl.clients, key)
		} else {
			rl.clients[key] = surviving
		}
	}

	recent := keepAfter(rl.clients[client], windowStart)
	if len(recent) >= rl.max {
		oldest := recent[0]
		retry := int(math.Ceil(oldest.Add(rl.window).Sub(now).Seconds()))
		return retry, false
	}

	rl.clients[client] = append(recent, now)
	return 0, true
}

func keepAfter(timestamps []time.Time, cutoff time.Time) []time.Time {
	var kept []time.Time
	for _, t := range timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Middleware returns the gin handler enforcing the limit, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		retryAfter, ok := rl.Allow(c.ClientIP())
		if !ok {
			metrics.RateLimitRejections.Inc()
			resp := dto.NewErrorResponse(
				"Too many requests",
				fmt.Sprintf("Maximum %d requests per %g seconds exceeded", rl.max, rl.window.Seconds()),
			)
			resp.RetryAfter = retryAfter
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
			return
		}

		c.Next()
	}
}
