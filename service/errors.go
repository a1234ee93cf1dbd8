package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidLoanTerms = errors.New("invalid loan terms")
	ErrInvalidClient    = errors.New("invalid client")
	ErrInvalidOrder     = errors.New("invalid order")
)

// InvalidRequestError reports a document kind or client category outside
// the supported set. It matches ErrInvalidRequest with errors.Is.
type InvalidRequestError struct {
	Field string
	Value string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: unknown %s %q", e.Field, e.Value)
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}
