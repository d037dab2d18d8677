package model

import "fmt"

// EndpointError reports a fatal model-endpoint failure: the transport
// failed, the endpoint returned a non-success status, or the response body
// could not be decoded into the expected shape. It is never retried by the
// loop; callers decide whether to retry the whole invocation.
type EndpointError struct {
	// StatusCode is the HTTP status if one was received, zero otherwise.
	StatusCode int
	// Message summarizes what went wrong.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *EndpointError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("model endpoint error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("model endpoint error (status %d): %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("model endpoint error: %s: %v", e.Message, e.Err)
	default:
		return fmt.Sprintf("model endpoint error: %s", e.Message)
	}
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *EndpointError) Unwrap() error { return e.Err }

// NewEndpointError constructs an EndpointError wrapping err.
func NewEndpointError(message string, err error) *EndpointError {
	return &EndpointError{Message: message, Err: err}
}
