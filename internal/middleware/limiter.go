package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limit tiers.
const (
	// Login / register / checkout
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// Everything else
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func (rl *rateLimiter) getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		rl.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanup removes stale entries so the visitors map does not grow without bound.
func (rl *rateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit enforces the strict tier on auth/checkout routes and the general
// tier everywhere else. It runs before authentication, so buckets are keyed
// by client IP and tier.
func RateLimit() gin.HandlerFunc {
	rl := &rateLimiter{visitors: make(map[string]*visitor)}
	go rl.cleanup()

	return func(c *gin.Context) {
		limit, burst, tier := resolveRateTier(c)

		key := fmt.Sprintf("ip:%s:%s", c.ClientIP(), tier)

		limiter := rl.getVisitor(key, limit, burst)
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": http.StatusText(http.StatusTooManyRequests)})
			return
		}

		c.Next()
	}
}

func resolveRateTier(c *gin.Context) (rate.Limit, int, string) {
	switch c.FullPath() {
	case "/api/login", "/api/register", "/api/checkout":
		return limitStrict, burstStrict, "strict"
	}
	return limitGeneral, burstGeneral, "general"
}
