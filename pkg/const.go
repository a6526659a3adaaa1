package pkg

const (
	HeaderTraceId   string = "X-Trace-Id"
	HeaderRequestId string = "X-Request-Id"
)

const TraceId string = "trace_id"

// ResultStatus is the state class suffix applied to the results container.
type ResultStatus string

const (
	ResultStatusError      ResultStatus = "error"
	ResultStatusFraudulent ResultStatus = "fraudulent"
	ResultStatusLegitimate ResultStatus = "legitimate"
)

// TransactionTypes lists the transaction categories offered by the analysis form.
var TransactionTypes = []string{"CASH_IN", "CASH_OUT", "DEBIT", "PAYMENT", "TRANSFER"}
