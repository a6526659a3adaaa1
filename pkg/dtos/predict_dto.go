package dtos

import (
	"fmt"

	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/utils"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/views"
)

// PredictRequest is the body posted to the prediction service.
type PredictRequest struct {
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	OldBalanceOrg  float64 `json:"oldbalanceOrg"`
	NewBalanceOrig float64 `json:"newbalanceOrig"`
	OldBalanceDest float64 `json:"oldbalanceDest"`
	NewBalanceDest float64 `json:"newbalanceDest"`
}

// PredictResponse is the prediction service's success body. The validate tags
// are only enforced when strict response checking is enabled.
type PredictResponse struct {
	IsFraud          bool    `json:"is_fraud"`
	FraudProbability float64 `json:"fraud_probability" validate:"gte=0,lte=1"`
	Confidence       string  `json:"confidence" validate:"oneof=high medium low"`
}

// InvalidNumberError reports a form field that has no JSON representable value.
type InvalidNumberError struct {
	Field string
	Value string
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid numeric value for %s", e.Field)
}

// NewPredictRequest coerces the numeric text fields of in to float64.
func NewPredictRequest(in views.TransactionInput) (PredictRequest, error) {
	req := PredictRequest{Type: in.Type}
	fields := []struct {
		name string
		src  views.NumericText
		dst  *float64
	}{
		{"amount", in.Amount, &req.Amount},
		{"oldbalanceOrg", in.OldBalanceOrg, &req.OldBalanceOrg},
		{"newbalanceOrig", in.NewBalanceOrig, &req.NewBalanceOrig},
		{"oldbalanceDest", in.OldBalanceDest, &req.OldBalanceDest},
		{"newbalanceDest", in.NewBalanceDest, &req.NewBalanceDest},
	}
	for _, f := range fields {
		v, ok := utils.ParseFloatPrefix(string(f.src))
		if !ok || !utils.IsFinite(v) {
			return PredictRequest{}, InvalidNumberError{Field: f.name, Value: string(f.src)}
		}
		*f.dst = v
	}
	return req, nil
}
