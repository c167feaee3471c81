package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"orderdesk/internal/server/http/dto"
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client token bucket, keyed by client IP.
// Stale buckets are swept in the background to bound memory.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	visitors map[string]*visitor
	sweep    sync.Once
}

// NewRateLimiter creates a limiter with the given refill rate and burst.
func NewRateLimiter(limit float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(limit),
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
}

// Handler returns the gin middleware enforcing the limit.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	l.sweep.Do(func() { go l.cleanupVisitors() })
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.MessageResponse{Message: "Too many requests"})
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = time.Now()
	l.mu.Unlock()
	return v.limiter.Allow()
}

func (l *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		l.mu.Lock()
		for key, v := range l.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, key)
			}
		}
		l.mu.Unlock()
	}
}
