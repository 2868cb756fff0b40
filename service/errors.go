package service

import "net/http"

// StatusError is a failure with the HTTP status and message clients see.
type StatusError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *StatusError) Error() string { return e.Message }

func (e *StatusError) Unwrap() error { return e.Err }

// NotFound reports absent upstream data.
func NotFound(message string) *StatusError {
	return &StatusError{StatusCode: http.StatusNotFound, Message: message}
}

// UpstreamFailure reports a failed provider interaction; the message is
// prefix followed by the provider's error text.
func UpstreamFailure(prefix string, err error) *StatusError {
	return &StatusError{
		StatusCode: http.StatusInternalServerError,
		Message:    prefix + err.Error(),
		Err:        err,
	}
}

const (
	msgHistoryNotFound = "No historical data found"
	msgStockNotFound   = "Stock not found"

	prefixHistory   = "Error fetching history: "
	prefixSearch    = "Internal Server Error: "
	prefixHotStocks = "Error fetching hot stocks: "
	prefixNews      = "Error fetching news: "
)
