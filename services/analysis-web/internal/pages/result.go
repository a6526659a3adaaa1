package pages

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/predictor"
)

const ErrorHint = "The ML model might be disconnected. Please try again later."

// ResultView is the data behind FragmentTemplate.
type ResultView struct {
	Visible         bool
	IsError         bool
	Status          pkg.ResultStatus
	Badge           string
	Message         string
	Hint            string
	ProbabilityText string
	ConfidenceLabel string
	ConfidenceClass string
}

// ContainerClass is the class attribute of #analysisResults.
func (v ResultView) ContainerClass() string {
	if !v.Visible {
		return "analysis-results hidden"
	}
	return "analysis-results result-" + string(v.Status)
}

// HiddenResult is the container before anything was submitted.
func HiddenResult() ResultView {
	return ResultView{}
}

// ErrorResult renders message in the error state.
func ErrorResult(message string) ResultView {
	return ResultView{
		Visible: true,
		IsError: true,
		Status:  pkg.ResultStatusError,
		Badge:   "Error",
		Message: message,
		Hint:    ErrorHint,
	}
}

// NewResultView applies the rendering rule: failures get the error state,
// predictions are marked fraudulent or legitimate.
func NewResultView(res predictor.PredictionResult) ResultView {
	switch r := res.(type) {
	case predictor.Failure:
		return ErrorResult(r.Message)
	case predictor.Prediction:
		view := ResultView{
			Visible:         true,
			Status:          pkg.ResultStatusLegitimate,
			Badge:           "LEGITIMATE",
			ProbabilityText: "Fraud Probability: " + percent(r.FraudProbability) + "%",
			ConfidenceLabel: strings.ToUpper(r.Confidence),
			ConfidenceClass: strings.ToLower(r.Confidence),
		}
		if r.IsFraud {
			view.Status = pkg.ResultStatusFraudulent
			view.Badge = "FRAUDULENT"
		}
		return view
	default:
		return ErrorResult(fmt.Sprintf("unexpected prediction result %T", res))
	}
}

// percent renders p*100 with one decimal. Ties round away from zero, judged on
// the exact binary value of p*100.
func percent(p float64) string {
	x := p * 100
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	// wide enough that x*10+0.5 is exact for any float64
	tenths := new(big.Float).SetPrec(1200).SetFloat64(x)
	tenths.Mul(tenths, big.NewFloat(10))
	tenths.Add(tenths, big.NewFloat(0.5))
	n, _ := tenths.Int(nil)

	whole, frac := new(big.Int).QuoRem(n, big.NewInt(10), new(big.Int))
	return fmt.Sprintf("%s%s.%s", sign, whole, frac)
}
