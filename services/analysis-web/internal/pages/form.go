package pages

import "github.com/nimeshabuddhika/fraud-analysis-web/pkg/views"

// TransactionForm binds the fields posted by #transactionForm.
type TransactionForm struct {
	Amount          string `form:"amount"`
	TransactionType string `form:"transactionType"`
	OldBalanceOrg   string `form:"oldbalanceOrg"`
	NewBalanceOrig  string `form:"newbalanceOrig"`
	OldBalanceDest  string `form:"oldbalanceDest"`
	NewBalanceDest  string `form:"newbalanceDest"`
}

// ToInput maps the form onto the transaction submitted for analysis.
func (f TransactionForm) ToInput() views.TransactionInput {
	return views.TransactionInput{
		Type:           f.TransactionType,
		Amount:         views.NumericText(f.Amount),
		OldBalanceOrg:  views.NumericText(f.OldBalanceOrg),
		NewBalanceOrig: views.NumericText(f.NewBalanceOrig),
		OldBalanceDest: views.NumericText(f.OldBalanceDest),
		NewBalanceDest: views.NumericText(f.NewBalanceDest),
	}
}
