package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/fady121/alfady/internal/apierror"

	"github.com/gin-gonic/gin"
)

// limiter is an in-memory sliding-window counter keyed by client IP.
// Good enough for a single-instance deployment; expired entries are purged
// in the background so IPs that never return do not accumulate.
type limiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count     int
	windowEnd time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	l := &limiter{limit: limit, window: window, entries: make(map[string]*windowEntry)}
	go l.purge()
	return l
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &windowEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit
}

func (l *limiter) purge() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, entry := range l.entries {
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
			}
		}
		l.mu.Unlock()
	}
}

// AuthRateLimiter limits code requests and verifications to 10 per minute
// per IP, making the 4-digit code space impractical to brute-force.
func AuthRateLimiter() gin.HandlerFunc {
	l := newLimiter(10, time.Minute)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many attempts, try again in a minute"))
			return
		}
		c.Next()
	}
}

// RateLimiter is the general-purpose API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, slow down"))
			return
		}
		c.Next()
	}
}
