package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned on a 401 response. It is the only failure
// permitted to force a stage transition (back to login).
var ErrUnauthorized = errors.New("credential rejected by the service")

// ValidationError carries the service's rejection detail for a 4xx
// response (FastAPI-style {"detail": ...} body). The form stays editable;
// no state transition follows.
type ValidationError struct {
	StatusCode int
	Detail     string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request rejected (status %d)", e.StatusCode)
}

// ServiceError indicates a transient service failure: a 5xx response or
// a transport-level error. Scoped to the action that issued the request;
// never crashes the session.
type ServiceError struct {
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service unavailable: %v", e.Err)
	}
	return fmt.Sprintf("service error (status %d)", e.StatusCode)
}

func (e *ServiceError) Unwrap() error { return e.Err }
