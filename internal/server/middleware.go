package server

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/studysaathi/studysaathi/internal/config"
)

// UserIDHeader identifies the caller for rate limiting. Requests without it are keyed by client IP.
const UserIDHeader = "X-User-Id"

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("method", strings.ToUpper(c.Request.Method)),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("HTTP request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Info("HTTP request", fields...)
		}
	}
}

// CORS allows the configured browser origins. An empty list or "*" allows any origin.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", UserIDHeader},
		MaxAge:       time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	return cors.New(corsConfig)
}

// BodyLimit rejects request bodies above limit bytes.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorBody{Error: "Request body too large", Code: "body_too_large"})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

const (
	limiterIdleTTL     = 10 * time.Minute
	limiterSweepPeriod = time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller. Buckets idle for longer than idleTTL are dropped.
type RateLimiter struct {
	mu        sync.Mutex
	limits    map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a RateLimiter. A non-positive rate disables limiting.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	idleTTL := limiterIdleTTL
	if cfg.RequestsPerSecond > 0 {
		// an evicted bucket must not come back with more tokens than it would have refilled
		refill := time.Duration(float64(burst) / cfg.RequestsPerSecond * float64(time.Second))
		idleTTL = max(idleTTL, refill)
	}
	return &RateLimiter{
		limits:  make(map[string]*limiterEntry),
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (rl *RateLimiter) enabled() bool {
	return rl.limit > 0
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= limiterSweepPeriod {
		rl.sweep(now)
	}
	if entry, ok := rl.limits[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limits[key] = &limiterEntry{limiter: limiter, lastSeen: now}
	return limiter
}

// sweep drops idle buckets. rl.mu must be held.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, entry := range rl.limits {
		if now.Sub(entry.lastSeen) > rl.idleTTL {
			delete(rl.limits, key)
		}
	}
	rl.lastSweep = now
}

// Allow reports whether a request of key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	if !rl.enabled() {
		return true
	}
	return rl.getLimiter(key).Allow()
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{
				Error: "Too many requests, please slow down",
				Code:  "rate_limited",
			})
			return
		}
		c.Next()
	}
}
