package domain

import "errors"

var (
	// ErrInvalidParameter is returned when simulation parameters are rejected before a run.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDivisionByZero marks a percent return computed against a zero own contribution.
	ErrDivisionByZero = errors.New("division by zero")
)
