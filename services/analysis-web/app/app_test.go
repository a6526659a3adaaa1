package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/cache"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/configs"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p, err := predictor.NewPredictor(predictor.PredictorConfig{Logger: zap.NewNop()})
	require.NoError(t, err)

	r, err := NewRouter(zap.NewNop(), p)
	require.NoError(t, err)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewRouter_Routes(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		path     string
		contains string
	}{
		{"/health", `"status":"ok"`},
		{"/", `id="transactionForm"`},
		{"/static/styles.css", ".analysis-results"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.NotEmpty(t, w.Header().Get(pkg.HeaderTraceId))
		})
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	r := newRouter(t)
	get(r, "/health")

	w := get(r, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fraud_analysis_web_http_requests_total")
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	w := get(newRouter(t), "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRedisConfig(t *testing.T) {
	cfg := &configs.Config{
		RedisAddr:     "redis.internal:6380",
		RedisUsername: "throttle",
		RedisPassword: "s3cret",
		RedisDB:       3,
		RedisTLS:      true,
	}

	assert.Equal(t, cache.Config{
		Addr:     "redis.internal:6380",
		Username: "throttle",
		Password: "s3cret",
		DB:       3,
		UseTLS:   true,
	}, redisConfig(cfg))
}

func TestPredictorHTTPClient(t *testing.T) {
	cfg := &configs.Config{
		PredictorTimeout:       30 * time.Second,
		PredictorHeaderTimeout: 20 * time.Second,
		PredictorDialTimeout:   2 * time.Second,
		PredictorMaxConns:      8,
	}

	client := predictorHTTPClient(cfg)

	assert.Equal(t, 30*time.Second, client.Timeout)
	tr, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 20*time.Second, tr.ResponseHeaderTimeout)
	assert.Equal(t, 8, tr.MaxConnsPerHost)
}
