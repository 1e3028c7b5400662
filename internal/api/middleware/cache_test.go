package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primelogicsol/artstay-booking/internal/api/middleware"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestCacheMiddleware_ServesSecondReadFromCache(t *testing.T) {
	var hits int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"count":0}`))
	})
	handler := middleware.NewCacheMiddleware(newMemCache(), nil).Middleware(inner)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/dining/items?cuisine=wazwan", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[],"count":0}`, w.Body.String())
	}

	assert.Equal(t, 1, hits)
}

func TestCacheMiddleware_SessionScopedRoutesNeverCached(t *testing.T) {
	var hits int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{}`))
	})
	handler := middleware.NewCacheMiddleware(newMemCache(), nil).Middleware(inner)

	for _, path := range []string{"/api/selection/artisan", "/api/calendar/artisan"} {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("X-Cache"), "path %s", path)
		}
	}

	assert.Equal(t, 4, hits)
}

// Logging wraps the cache in the route chain, so a cache HIT that
// short-circuits before the handler is still request-logged.
func TestLoggingOutsideCache_LogsCacheHits(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[],"count":0}`))
	})
	handler := middleware.LoggingMiddleware(
		middleware.NewCacheMiddleware(newMemCache(), nil).Middleware(inner),
	)

	var codes []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/shop/items", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		codes = append(codes, w.Header().Get("X-Cache"))
	}

	assert.Equal(t, []string{"MISS", "HIT"}, codes)

	logged := bytes.Count(buf.Bytes(), []byte(`"path":"/api/shop/items"`))
	assert.Equal(t, 2, logged, "both the MISS and the HIT produce a request log line")
}
