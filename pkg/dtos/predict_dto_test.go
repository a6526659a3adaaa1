package dtos

import (
	"encoding/json"
	"testing"

	"github.com/nimeshabuddhika/fraud-analysis-web/pkg/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() views.TransactionInput {
	return views.TransactionInput{
		Type:           "CASH_OUT",
		Amount:         "250.5",
		OldBalanceOrg:  "1000.25",
		NewBalanceOrig: "749.75",
		OldBalanceDest: "0",
		NewBalanceDest: "250.5",
	}
}

func TestNewPredictRequest_CoercesNumericText(t *testing.T) {
	req, err := NewPredictRequest(sampleInput())
	require.NoError(t, err)

	assert.Equal(t, "CASH_OUT", req.Type)
	assert.Equal(t, 250.5, req.Amount)
	assert.Equal(t, 1000.25, req.OldBalanceOrg)
	assert.Equal(t, 749.75, req.NewBalanceOrig)
	assert.Equal(t, 0.0, req.OldBalanceDest)
	assert.Equal(t, 250.5, req.NewBalanceDest)
}

func TestNewPredictRequest_WireFormat(t *testing.T) {
	req, err := NewPredictRequest(sampleInput())
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Len(t, wire, 6)
	// numbers, not strings, go over the wire
	assert.Equal(t, 250.5, wire["amount"])
	assert.Equal(t, "CASH_OUT", wire["type"])
}

func TestNewPredictRequest_RoundTrip(t *testing.T) {
	in := views.TransactionInput{
		Type:           "TRANSFER",
		Amount:         "181.00000000000003",
		OldBalanceOrg:  "0.1",
		NewBalanceOrig: "1e-7",
		OldBalanceDest: "21182",
		NewBalanceDest: "123456789.123456",
	}
	req, err := NewPredictRequest(in)
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	var back PredictRequest
	require.NoError(t, json.Unmarshal(b, &back))

	assert.Equal(t, req.Type, back.Type)
	assert.InDelta(t, req.Amount, back.Amount, 1e-9)
	assert.InDelta(t, req.OldBalanceOrg, back.OldBalanceOrg, 1e-12)
	assert.InDelta(t, req.NewBalanceOrig, back.NewBalanceOrig, 1e-15)
	assert.InDelta(t, req.OldBalanceDest, back.OldBalanceDest, 1e-9)
	assert.InDelta(t, req.NewBalanceDest, back.NewBalanceDest, 1e-6)
}

func TestNewPredictRequest_InvalidNumber(t *testing.T) {
	in := sampleInput()
	in.OldBalanceDest = "n/a"

	_, err := NewPredictRequest(in)

	var numErr InvalidNumberError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "oldbalanceDest", numErr.Field)
	assert.EqualError(t, err, "invalid numeric value for oldbalanceDest")
}

func TestNewPredictRequest_RejectsInfinity(t *testing.T) {
	in := sampleInput()
	in.Amount = "Infinity"

	_, err := NewPredictRequest(in)
	assert.EqualError(t, err, "invalid numeric value for amount")
}
