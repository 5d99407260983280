package api

import "fmt"

// NetworkError wraps a transport failure (connection refused, timeout, ...)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response or an explicit error field in the body.
// Message is body.error when present, otherwise a synthesized HTTP line.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// ValidationError marks a response whose shape violates the contract,
// e.g. an indicator series that is not aligned with the point sequence
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
