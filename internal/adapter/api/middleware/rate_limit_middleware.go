package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"friendlyeats/pkg/errors"
	"friendlyeats/pkg/logger"
	"friendlyeats/pkg/response"
)

// RateLimiter implements a token bucket per caller.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     int           // requests per window
	window   time.Duration // time window
}

type visitor struct {
	tokens     int
	lastSeen   time.Time
	blockUntil time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

// Middleware limits by session uid when the caller is signed in, by IP
// otherwise.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				key = uid
			}

			if !rl.allow(key) {
				logger.Warn("Rate limit exceeded for %s on %s", key, c.Path())
				return response.Error(c, errors.TooManyRequests("Too many requests. Try again shortly."))
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, exists := rl.visitors[key]
	if !exists {
		rl.visitors[key] = &visitor{tokens: rl.rate - 1, lastSeen: now}
		return true
	}

	if now.Before(v.blockUntil) {
		return false
	}

	// Refill proportionally to the time passed.
	elapsed := now.Sub(v.lastSeen)
	v.tokens += int(elapsed * time.Duration(rl.rate) / rl.window)
	if v.tokens > rl.rate {
		v.tokens = rl.rate
	}
	v.lastSeen = now

	if v.tokens <= 0 {
		v.blockUntil = now.Add(rl.window)
		return false
	}

	v.tokens--
	return true
}

func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Hour)

		rl.mu.Lock()
		now := time.Now()
		for key, v := range rl.visitors {
			if now.Sub(v.lastSeen) > 2*time.Hour {
				delete(rl.visitors, key)
			}
		}
		rl.mu.Unlock()
	}
}

var (
	// Sign-up/sign-in attempts: 5 per minute per caller.
	AuthLimiter = NewRateLimiter(5, time.Minute)

	// Review submissions: 10 per minute per caller.
	ReviewLimiter = NewRateLimiter(10, time.Minute)
)

func AuthRateLimit() echo.MiddlewareFunc {
	return AuthLimiter.Middleware()
}

func ReviewRateLimit() echo.MiddlewareFunc {
	return ReviewLimiter.Middleware()
}
