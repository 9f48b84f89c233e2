package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes failures of a call to the scanner API
type ErrorType string

const (
	ErrorTypeNetwork           ErrorType = "network"
	ErrorTypeServer            ErrorType = "server"
	ErrorTypeMalformedResponse ErrorType = "malformed_response"
	ErrorTypeCancelled         ErrorType = "cancelled"
)

// ScanError represents a structured error from the scanner API
type ScanError struct {
	Type       ErrorType
	Message    string
	StatusCode int // set for server errors
	Timeout    bool
	Cause      error
}

// Error implements the error interface
func (e *ScanError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Type, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// IsServerError reports whether the scanner answered but the answer was unusable.
// Malformed responses count as server errors.
func (e *ScanError) IsServerError() bool {
	return e.Type == ErrorTypeServer || e.Type == ErrorTypeMalformedResponse
}

// IsRetryable returns true if the error is likely to succeed on retry
func (e *ScanError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork:
		return true
	case ErrorTypeServer:
		return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

// UserMessage returns a user-friendly error message
func (e *ScanError) UserMessage() string {
	switch e.Type {
	case ErrorTypeNetwork:
		if e.Timeout {
			return "The scanner did not answer in time. Check that it is running and try again."
		}
		return "Could not reach the scanner. Check the base URL and your connection, then try again."
	case ErrorTypeServer:
		return fmt.Sprintf("Scanner returned an error (%d): %s", e.StatusCode, e.Message)
	case ErrorTypeMalformedResponse:
		return fmt.Sprintf("Scanner sent an unexpected response: %s", e.Message)
	case ErrorTypeCancelled:
		return "Scan was cancelled."
	default:
		return e.Message
	}
}

// AsScanError unwraps err to a *ScanError, if it is one.
func AsScanError(err error) (*ScanError, bool) {
	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return scanErr, true
	}
	return nil, false
}

// Helper functions to create specific error types
func newNetworkError(cause error, timeout bool) *ScanError {
	return &ScanError{
		Type:    ErrorTypeNetwork,
		Message: "Network error",
		Timeout: timeout,
		Cause:   cause,
	}
}

func newServerError(status int, message string) *ScanError {
	return &ScanError{
		Type:       ErrorTypeServer,
		Message:    message,
		StatusCode: status,
	}
}

func newMalformedResponseError(message string, cause error) *ScanError {
	return &ScanError{
		Type:    ErrorTypeMalformedResponse,
		Message: message,
		Cause:   cause,
	}
}

func newCancelledError(cause error) *ScanError {
	return &ScanError{
		Type:    ErrorTypeCancelled,
		Message: "Operation cancelled",
		Cause:   cause,
	}
}
