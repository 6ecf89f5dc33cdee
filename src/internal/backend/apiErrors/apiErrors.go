package apiErrors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	Network    ErrorCode = "NETWORK"
	HTTPStatus ErrorCode = "HTTP_STATUS"
	Decode     ErrorCode = "DECODE"
	Validation ErrorCode = "VALIDATION"
)

// APIError is the failure reason of a backend call. Status is set for
// HTTPStatus errors only.
type APIError struct {
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("[%s %d] %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func IsCode(err error, code ErrorCode) bool {
	var e *APIError
	return errors.As(err, &e) && e.Code == code
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
