package main

import "fmt"

// ServiceError carries the step that failed: [Service.Operation] message
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// WrapError attaches service context to err. A nil err stays nil.
func WrapError(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}

// WrapOperationError wraps an error with a consistent "failed to {operation}: %w" format.
//
// Example:
//
//	if err := cfg.Validate(); err != nil {
//	    return WrapOperationError("load config", err)
//	}
func WrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
