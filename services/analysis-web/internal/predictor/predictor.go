package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/dtos"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/views"
	"go.uber.org/zap"
)

const DefaultPredictURL = "http://localhost:8000/predict"

var errEmptyPrediction = errors.New("prediction response body is null")

// Predictor talks to the fraud prediction service.
type Predictor interface {
	// Predict submits one transaction. It never returns an error: every
	// problem comes back as a Failure.
	Predict(ctx context.Context, traceID string, in views.TransactionInput) PredictionResult
	// ServiceInfo returns the service's root document (required fields, valid types).
	ServiceInfo(ctx context.Context) (map[string]any, error)
	// ModelInfo returns the service's /model_info document.
	ModelInfo(ctx context.Context) (map[string]any, error)
}

// PredictorConfig holds dependencies for the prediction client.
type PredictorConfig struct {
	Logger     *zap.Logger
	PredictURL string       // defaults to DefaultPredictURL
	HTTPClient *http.Client // defaults to http.DefaultClient

	// Limiter throttles calls toward the service; nil disables throttling.
	Limiter         *pkg.DistributedLimiter
	MaxThrottleWait time.Duration

	// StrictResponses rejects success bodies whose probability is outside
	// [0,1] or whose confidence is not high/medium/low.
	StrictResponses bool

	// internal initialization
	predictURL *url.URL
	baseURL    *url.URL
	validate   *validator.Validate
}

// NewPredictor validates the endpoint and returns a ready Predictor.
func NewPredictor(cfg PredictorConfig) (Predictor, error) {
	if cfg.PredictURL == "" {
		cfg.PredictURL = DefaultPredictURL
	}
	u, err := url.Parse(cfg.PredictURL)
	if err != nil {
		return nil, fmt.Errorf("parse predict url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("predict url must be absolute http(s): %q", cfg.PredictURL)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	cfg.predictURL = u
	// info endpoints sit next to /predict
	cfg.baseURL = u.ResolveReference(&url.URL{Path: "./"})
	cfg.validate = validator.New()
	return &cfg, nil
}

func (p *PredictorConfig) Predict(ctx context.Context, traceID string, in views.TransactionInput) PredictionResult {
	start := time.Now()
	res := p.predict(ctx, in)
	observe(res, time.Since(start))
	p.trace(traceID, res)
	return res
}

func (p *PredictorConfig) predict(ctx context.Context, in views.TransactionInput) (res PredictionResult) {
	defer func() {
		if r := recover(); r != nil {
			res = transportFailure(fmt.Errorf("%v", r))
		}
	}()

	body, err := dtos.NewPredictRequest(in)
	if err != nil {
		return transportFailure(err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return transportFailure(err)
	}

	if err = p.Limiter.Wait(ctx, p.MaxThrottleWait); err != nil {
		if errors.Is(err, pkg.ErrRateLimitExceeded) {
			return Failure{Kind: TransportError, Message: busyMessage}
		}
		return transportFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.predictURL.String(), bytes.NewReader(payload))
	if err != nil {
		return transportFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		raw, _ := io.ReadAll(resp.Body)
		return Failure{Kind: ServiceError, Message: serviceErrorMessage(raw)}
	}

	var out *dtos.PredictResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return transportFailure(err)
	}
	if out == nil {
		return transportFailure(errEmptyPrediction)
	}
	if p.StrictResponses {
		if err = p.validate.Struct(out); err != nil {
			return Failure{Kind: ServiceError, Message: "malformed prediction response: " + err.Error()}
		}
	}
	return Prediction{
		IsFraud:          out.IsFraud,
		FraudProbability: out.FraudProbability,
		Confidence:       out.Confidence,
	}
}

func (p *PredictorConfig) ServiceInfo(ctx context.Context) (map[string]any, error) {
	return p.getDocument(ctx, p.baseURL)
}

func (p *PredictorConfig) ModelInfo(ctx context.Context) (map[string]any, error) {
	return p.getDocument(ctx, p.baseURL.ResolveReference(&url.URL{Path: "model_info"}))
}

func (p *PredictorConfig) getDocument(ctx context.Context, u *url.URL) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: GET %s returned %d: %s", pkg.ErrUpstreamStatus, u.Path, resp.StatusCode, serviceErrorMessage(raw))
	}

	var doc map[string]any
	if err = json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", u.Path, err)
	}
	return doc, nil
}

// trace writes the human readable verdict lines.
func (p *PredictorConfig) trace(traceID string, res PredictionResult) {
	switch r := res.(type) {
	case Prediction:
		probability := fmt.Sprintf("%.2f%%", r.FraudProbability*100)
		if r.IsFraud {
			p.Logger.Info("fraud detected",
				zap.String(pkg.TraceId, traceID),
				zap.String("probability", probability),
				zap.String("confidence", r.Confidence))
			return
		}
		p.Logger.Info("transaction appears legitimate",
			zap.String(pkg.TraceId, traceID),
			zap.String("fraud_probability", probability))
	case Failure:
		p.Logger.Error("prediction failed",
			zap.String(pkg.TraceId, traceID),
			zap.Stringer("kind", r.Kind),
			zap.String("message", r.Message))
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// serviceErrorMessage extracts the message from a non-2xx body: the JSON
// "detail" field, else the raw text, else the generic message. A body that is
// JSON but carries no usable detail also gets the generic message, except a
// bare null which is reported verbatim.
func serviceErrorMessage(raw []byte) string {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if len(raw) == 0 {
			return genericServiceMessage
		}
		return string(raw)
	}

	if parsed == nil {
		// a literal null carries no detail to read, the raw text is reported
		return string(raw)
	}
	obj, _ := parsed.(map[string]any)
	switch detail := obj["detail"].(type) {
	case nil:
		return genericServiceMessage
	case string:
		if detail == "" {
			return genericServiceMessage
		}
		return detail
	case bool:
		if !detail {
			return genericServiceMessage
		}
	case float64:
		if detail == 0 {
			return genericServiceMessage
		}
	}
	// structured detail (e.g. a validation error list) is reported as compact JSON
	b, err := json.Marshal(obj["detail"])
	if err != nil {
		return genericServiceMessage
	}
	return string(b)
}

// transportFailure normalizes a transport problem. url.Error is unwrapped so
// the message names the cause rather than repeating the request line.
func transportFailure(err error) Failure {
	msg := ""
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			err = urlErr.Err
		}
		msg = err.Error()
	}
	if msg == "" {
		msg = genericTransportMessage
	}
	return Failure{Kind: TransportError, Message: msg}
}
