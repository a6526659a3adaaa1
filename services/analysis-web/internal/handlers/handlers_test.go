package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	middleware "github.com/nimeshabuddhika/fraud-analysis-web/pkg/middlewares"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/views"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/pages"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/predictor"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubPredictor records the last input and returns canned results.
type stubPredictor struct {
	mu      sync.Mutex
	result  predictor.PredictionResult
	info    map[string]any
	infoErr error
	calls   int
	last    views.TransactionInput
	traceID string
}

func (s *stubPredictor) Predict(_ context.Context, traceID string, in views.TransactionInput) predictor.PredictionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = in
	s.traceID = traceID
	return s.result
}

func (s *stubPredictor) ServiceInfo(context.Context) (map[string]any, error) {
	return s.info, s.infoErr
}

func (s *stubPredictor) ModelInfo(context.Context) (map[string]any, error) {
	return s.info, s.infoErr
}

func newTestRouter(t *testing.T, p predictor.Predictor) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := pages.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.TraceID())
	r.SetHTMLTemplate(tmpl)

	logger := zap.NewNop()
	NewBaseHandler(logger).RegisterRoutes(r)
	NewAnalysisHandler(logger, p).RegisterRoutes(r)
	NewPredictionHandler(logger, p).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func do(r http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(pkg.HeaderTraceId, "trace-test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func formBody() string {
	return url.Values{
		"amount":          {"250.5"},
		"transactionType": {"TRANSFER"},
		"oldbalanceOrg":   {"1000"},
		"newbalanceOrig":  {"749.5"},
		"oldbalanceDest":  {"0"},
		"newbalanceDest":  {"250.5"},
	}.Encode()
}

var errUpstream = errors.New("dial tcp: connection refused")
