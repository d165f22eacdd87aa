package common

import (
	"errors"
	"fmt"
	"strings"
)

// AppError represents application-specific errors.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidInput  = errors.New("invalid input")
)

// Error codes for the extraction path.
const (
	CodeTransport = "TRANSPORT_ERROR" // request could not be sent or response not retrievable
	CodeService   = "SERVICE_ERROR"   // non-2xx status from the extraction service
	CodeDecode    = "DECODE_ERROR"    // response body present but not interpretable
	CodeInput     = "INPUT_ERROR"     // local read/encode/parse failure
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// TransportError wraps a failure to reach the extraction service.
func TransportError(message string, cause error) *AppError {
	return NewAppError(CodeTransport, message, cause)
}

// ServiceError reports a non-2xx response. The message embeds the HTTP
// status code and the best-effort error body.
func ServiceError(status int, body string) *AppError {
	msg := fmt.Sprintf("extraction service status %d", status)
	if b := strings.TrimSpace(body); b != "" {
		msg += ": " + b
	}
	return NewAppError(CodeService, msg, nil)
}

// InputError reports a locally invalid input (file, encoding, edit value).
func InputError(message string, cause error) *AppError {
	return NewAppError(CodeInput, message, cause)
}

// IsCode reports whether err (or anything it wraps) carries the given code.
func IsCode(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
