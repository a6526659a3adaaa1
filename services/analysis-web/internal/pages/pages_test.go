package pages

import (
	"bytes"
	"io"
	"testing"

	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/internal/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestPageTemplate_FormContract(t *testing.T) {
	html := render(t, PageTemplate, NewPage(TransactionForm{}, HiddenResult()))

	assert.Contains(t, html, `<form id="transactionForm"`)
	for _, name := range []string{"amount", "transactionType", "oldbalanceOrg", "newbalanceOrig", "oldbalanceDest", "newbalanceDest"} {
		assert.Contains(t, html, `name="`+name+`"`)
	}
	assert.Contains(t, html, `<div id="analysisResults" class="analysis-results hidden">`)
	assert.Contains(t, html, `<option value="TRANSFER">TRANSFER</option>`)
}

func TestPageTemplate_EchoesSubmittedValues(t *testing.T) {
	form := TransactionForm{Amount: "250.5", TransactionType: "CASH_OUT", OldBalanceOrg: "1000"}
	html := render(t, PageTemplate, NewPage(form, HiddenResult()))

	assert.Contains(t, html, `value="250.5"`)
	assert.Contains(t, html, `<option value="CASH_OUT" selected>CASH_OUT</option>`)
}

func TestFragmentTemplate_Prediction(t *testing.T) {
	html := render(t, FragmentTemplate, NewResultView(predictor.Prediction{IsFraud: true, FraudProbability: 0.87, Confidence: "high"}))

	assert.Contains(t, html, `class="analysis-results result-fraudulent"`)
	assert.Contains(t, html, `<span class="status-badge fraudulent">FRAUDULENT</span>`)
	assert.Contains(t, html, `<p class="risk-score">Fraud Probability: 87.0%</p>`)
	assert.Contains(t, html, `<span class="confidence-high">HIGH</span>`)
}

func TestFragmentTemplate_ErrorIsEscaped(t *testing.T) {
	html := render(t, FragmentTemplate, ErrorResult(`<script>alert(1)</script>`))

	assert.Contains(t, html, `class="analysis-results result-error"`)
	assert.Contains(t, html, `<h2>Analysis Error</h2>`)
	assert.Contains(t, html, `&lt;script&gt;alert(1)&lt;/script&gt;`)
	assert.NotContains(t, html, `<script>`)
	assert.Contains(t, html, ErrorHint)
}

func TestStaticFS(t *testing.T) {
	f, err := StaticFS().Open("styles.css")
	require.NoError(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), ".result-fraudulent")
}

func TestTransactionForm_ToInput(t *testing.T) {
	in := TransactionForm{
		Amount:          "250.5",
		TransactionType: "PAYMENT",
		OldBalanceOrg:   "1",
		NewBalanceOrig:  "2",
		OldBalanceDest:  "3",
		NewBalanceDest:  "4",
	}.ToInput()

	assert.Equal(t, "PAYMENT", in.Type)
	assert.EqualValues(t, "250.5", in.Amount)
	assert.EqualValues(t, "4", in.NewBalanceDest)
}
