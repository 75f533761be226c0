package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// stalePruneInterval controls how often stale per-IP limiters are dropped.
const stalePruneInterval = 5 * time.Minute

// authRateLimiterStore holds per-IP rate limiters with automatic cleanup.
type authRateLimiterStore struct {
	limiters  sync.Map     // map[string]*authRateLimiterEntry (IP -> limiter)
	nextPrune atomic.Int64 // unix nanos of the next stale-entry sweep
	rps       float64
	burst     int
}

// authRateLimiterEntry holds a rate limiter and last access time for cleanup.
type authRateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// AuthRateLimitMiddleware enforces per-IP rate limiting on the signup and
// login endpoints.
//
// These endpoints are unauthenticated and accept credentials, so they are the
// natural target for credential stuffing and brute force attempts. Uses the
// token bucket algorithm via golang.org/x/time/rate; each IP address gets an
// independent limiter.
//
// Returns 429 Too Many Requests with a Retry-After header when the limit is
// exceeded.
func AuthRateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &authRateLimiterStore{
		rps:   rps,
		burst: burst,
	}
	store.nextPrune.Store(time.Now().Add(stalePruneInterval).UnixNano())

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiter := store.getLimiter(clientIP)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()

			logger.Debug("auth rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "Too many authentication attempts from this IP. Please retry later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getLimiter retrieves or creates a rate limiter for an IP address.
// LoadOrStore keeps concurrent first requests from the same IP on one limiter.
func (s *authRateLimiterStore) getLimiter(ip string) *rate.Limiter {
	now := time.Now()
	s.pruneStale(now)

	candidate := &authRateLimiterEntry{
		limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst),
	}
	val, _ := s.limiters.LoadOrStore(ip, candidate)

	entry := val.(*authRateLimiterEntry)
	entry.mu.Lock()
	entry.lastAccess = now
	entry.mu.Unlock()
	return entry.limiter
}

// pruneStale removes rate limiters that haven't been accessed recently,
// preventing unbounded memory growth from IP address churn. The sweep is
// amortized over requests; no background goroutine is involved.
func (s *authRateLimiterStore) pruneStale(now time.Time) {
	next := s.nextPrune.Load()
	if now.UnixNano() < next {
		return
	}
	// Only one request wins the swap and runs the sweep
	if !s.nextPrune.CompareAndSwap(next, now.Add(stalePruneInterval).UnixNano()) {
		return
	}

	cutoff := now.Add(-stalePruneInterval)
	s.limiters.Range(func(key, val any) bool {
		entry := val.(*authRateLimiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(cutoff)
		entry.mu.Unlock()
		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}
