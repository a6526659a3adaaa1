package predictor

import "encoding/json"

const (
	genericServiceMessage   = "Error making prediction"
	genericTransportMessage = "Network error or server is not responding"
	busyMessage             = "prediction service is busy, try again"
)

// PredictionResult is either a Prediction or a Failure. Callers branch with a
// type switch; no other implementations exist.
type PredictionResult interface {
	isPredictionResult()
}

// Prediction is the prediction service's verdict, passed through as received.
type Prediction struct {
	IsFraud          bool    `json:"is_fraud"`
	FraudProbability float64 `json:"fraud_probability"`
	Confidence       string  `json:"confidence"`
}

func (Prediction) isPredictionResult() {}

// FailureKind tells service-side rejections apart from transport problems.
// Only logs and metrics look at it.
type FailureKind int

const (
	ServiceError FailureKind = iota + 1
	TransportError
)

func (k FailureKind) String() string {
	switch k {
	case ServiceError:
		return "service_error"
	case TransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Failure is a prediction that could not be obtained.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (Failure) isPredictionResult() {}

func (f Failure) Error() string { return f.Message }

// MarshalJSON keeps the wire shape script callers expect: {"error":true,"message":...}.
func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}{Error: true, Message: f.Message})
}
