package views

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionInput_UnmarshalStringsAndNumbers(t *testing.T) {
	body := `{
		"type": "TRANSFER",
		"amount": "250.5",
		"oldbalanceOrg": 1000,
		"newbalanceOrig": 749.5,
		"oldbalanceDest": "0",
		"newbalanceDest": null
	}`

	var in TransactionInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	assert.Equal(t, "TRANSFER", in.Type)
	assert.Equal(t, NumericText("250.5"), in.Amount)
	assert.Equal(t, NumericText("1000"), in.OldBalanceOrg)
	assert.Equal(t, NumericText("749.5"), in.NewBalanceOrig)
	assert.Equal(t, NumericText("0"), in.OldBalanceDest)
	assert.Equal(t, NumericText(""), in.NewBalanceDest)
}

func TestNumericText_RejectsObjects(t *testing.T) {
	var n NumericText
	err := json.Unmarshal([]byte(`{"value": 1}`), &n)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`true`), &n)
	assert.Error(t, err)
}
