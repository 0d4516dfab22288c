package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"restaurante/internal/dto"

	"github.com/rs/zerolog/log"
)

// MenuCache is the slice of infra.Cache the services need.
type MenuCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

const claveMenu = "menu:platos"

// sinCache is used when no cache is wired (tests, CLI).
type sinCache struct{}

func (sinCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (sinCache) Set(context.Context, string, []byte, time.Duration) {}
func (sinCache) Delete(context.Context, ...string) {}

func cacheOrNoop(c MenuCache) MenuCache {
	if c == nil {
		return sinCache{}
	}
	return c
}

func leerCache[T any](ctx context.Context, c MenuCache, key string) (T, bool) {
	var out T
	raw, ok := c.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: entrada ilegible, se descarta")
		c.Delete(ctx, key)
		return out, false
	}
	return out, true
}

func escribirCache(ctx context.Context, c MenuCache, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: no se pudo serializar")
		return
	}
	c.Set(ctx, key, raw, ttl)
}

// CacheMenu owns the cached dish list. Dish and ingredient services share one
// instance so that every write bumps the same generation; a list read from the
// database is only stored if no write happened while it was being built.
type CacheMenu struct {
	backend MenuCache
	ttl     time.Duration
	gen     atomic.Uint64
}

func NewCacheMenu(backend MenuCache, ttl time.Duration) *CacheMenu {
	return &CacheMenu{backend: cacheOrNoop(backend), ttl: ttl}
}

func menuOrNoop(m *CacheMenu) *CacheMenu {
	if m == nil {
		return NewCacheMenu(nil, 0)
	}
	return m
}

func (m *CacheMenu) leer(ctx context.Context) ([]dto.PlatoResponse, bool) {
	return leerCache[[]dto.PlatoResponse](ctx, m.backend, claveMenu)
}

// generacion must be taken before the database read that feeds guardar.
func (m *CacheMenu) generacion() uint64 { return m.gen.Load() }

func (m *CacheMenu) guardar(ctx context.Context, gen uint64, platos []dto.PlatoResponse) {
	if m.gen.Load() != gen {
		return
	}
	escribirCache(ctx, m.backend, claveMenu, platos, m.ttl)
	// an invalidation between the check and the Set already ran its Delete
	if m.gen.Load() != gen {
		m.backend.Delete(ctx, claveMenu)
	}
}

func (m *CacheMenu) invalidar(ctx context.Context) {
	m.gen.Add(1)
	m.backend.Delete(ctx, claveMenu)
}
