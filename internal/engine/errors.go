package engine

import "errors"

// Engine errors. All failures are value-returned; an empty expansion is a
// valid empty result, never an error.
var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrUnsupportedFrequency   = errors.New("unsupported frequency")
	ErrUnsupportedPaymentPlan = errors.New("unsupported payment plan type")
	ErrUnreachableTarget      = errors.New("unreachable target")
	ErrInvalidDateRange       = errors.New("invalid date range")
)
