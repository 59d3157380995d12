package entities

import "fmt"

// ValidationError reports bad input. It is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

// UpstreamError wraps a failed gateway call: a non-2xx answer (StatusCode/Body)
// or a transport failure (Err, StatusCode 0).
type UpstreamError struct {
	Gateway    GatewayTag
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Gateway, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s %s failed: status=%d body=%s", e.Gateway, e.Operation, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AuthError reports a failure to obtain gateway credentials.
type AuthError struct {
	Gateway GatewayTag
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s auth failed: %v", e.Gateway, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type UnsupportedOperationError struct {
	Gateway   GatewayTag
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Gateway, e.Operation)
}

// SignatureError rejects a webhook whose HMAC is missing or wrong.
type SignatureError struct {
	Reason string
}

func (e *SignatureError) Error() string {
	return "invalid webhook signature: " + e.Reason
}
