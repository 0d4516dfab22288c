package middleware

import (
	"net/http"
	"sync"
	"time"

	"restaurante/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana tracks request counts per IP within a fixed window.
type ventana struct {
	count     int
	windowEnd time.Time
}

// Limiter is a per-IP fixed-window counter shared by the rate limit middlewares.
type Limiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries map[string]*ventana
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{limit: limit, window: window, entries: make(map[string]*ventana)}
}

// Allow counts one hit for key and reports whether it is within the limit,
// plus the end of the current window.
func (l *Limiter) Allow(key string, now time.Time) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.windowEnd) {
		e = &ventana{windowEnd: now.Add(l.window)}
		l.entries[key] = e
	}
	e.count++
	return e.count <= l.limit, e.windowEnd
}

// Purge drops expired windows and returns how many were removed.
func (l *Limiter) Purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	purged := 0
	for k, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, k)
			purged++
		}
	}
	return purged
}

// Middleware rejects over-limit requests with 429.
func (l *Limiter) Middleware(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := l.Allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", windowEnd.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter(l *Limiter) gin.HandlerFunc {
	return l.Middleware("Demasiados intentos de login. Intente en 1 minuto.")
}

// RateLimiter is the general API limiter.
func RateLimiter(l *Limiter) gin.HandlerFunc {
	return l.Middleware("Demasiadas solicitudes. Intente nuevamente en un momento.")
}

const purgeInterval = 5 * time.Minute

// StartPurge removes expired entries every purgeInterval until stop is closed.
func StartPurge(stop <-chan struct{}, limiters ...*Limiter) {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				purged := 0
				for _, l := range limiters {
					purged += l.Purge(now)
				}
				if purged > 0 {
					log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
				}
			}
		}
	}()
}
