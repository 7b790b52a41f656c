package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doHealth(t *testing.T, rdb *redis.Client, path string) HealthResponse {
	t.Helper()
	r := gin.New()
	NewHealthHandler("portfolio-web", "1.2.3", rdb).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthRedisUp(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	resp := doHealth(t, rdb, "/health")
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.Redis)
	assert.Equal(t, "portfolio-web", resp.Service)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestHealthRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	resp := doHealth(t, rdb, "/healthz")
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "down", resp.Redis)
}

func TestHealthWithoutRedis(t *testing.T) {
	resp := doHealth(t, nil, "/health")
	assert.Equal(t, "disabled", resp.Redis)
}
