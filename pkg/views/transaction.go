package views

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NumericText holds a numeric form field in its submitted text form. It
// unmarshals from either a JSON string ("250.5") or a JSON number (250.5).
type NumericText string

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric field must be a string or number: %w", err)
	}
	*n = NumericText(num.String())
	return nil
}

// TransactionInput is one transaction submitted for analysis. It lives for a
// single submission and is never stored.
type TransactionInput struct {
	Type           string      `json:"type"`
	Amount         NumericText `json:"amount"`
	OldBalanceOrg  NumericText `json:"oldbalanceOrg"`
	NewBalanceOrig NumericText `json:"newbalanceOrig"`
	OldBalanceDest NumericText `json:"oldbalanceDest"`
	NewBalanceDest NumericText `json:"newbalanceDest"`
}
