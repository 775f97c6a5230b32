package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"meeting-room-booking/internal/handler/httperr"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// Buckets unused this long are dropped; a returning client starts with a full burst.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	limit     rate.Limit
	burst     int
	clock     clock.Clock
	lastPrune time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*ipLimiter),
		limit:     rate.Limit(cfg.Rate),
		burst:     cfg.Burst,
		clock:     clk,
		lastPrune: clk.Now(),
	}
}

// allow takes one token from ip's bucket, dropping idle buckets first.
func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if now.Sub(r.lastPrune) > limiterIdleTTL {
		for key, l := range r.limiters {
			if now.Sub(l.lastSeen) > limiterIdleTTL {
				delete(r.limiters, key)
			}
		}
		r.lastPrune = now
	}

	l, exists := r.limiters[ip]
	if !exists {
		l = &ipLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[ip] = l
	}
	l.lastSeen = now
	return l.limiter.AllowN(now, 1)
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.allow(ip) {
			slog.Warn("Rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests. Try again later.", nil)
			return
		}
		c.Next()
	}
}
