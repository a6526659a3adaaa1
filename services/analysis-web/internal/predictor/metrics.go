package predictor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraud_analysis_web",
			Subsystem: "predictor",
			Name:      "predictions_total",
			Help:      "Prediction calls by outcome",
		},
		[]string{"outcome"},
	)

	predictionLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fraud_analysis_web",
			Subsystem: "predictor",
			Name:      "request_duration_seconds",
			Help:      "Prediction service round trip latency",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)
)

func outcomeOf(res PredictionResult) string {
	switch r := res.(type) {
	case Prediction:
		if r.IsFraud {
			return "fraudulent"
		}
		return "legitimate"
	case Failure:
		return r.Kind.String()
	default:
		return "unknown"
	}
}

func observe(res PredictionResult, elapsed time.Duration) {
	outcome := outcomeOf(res)
	predictionsTotal.WithLabelValues(outcome).Inc()
	predictionLatency.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
