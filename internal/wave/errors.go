package wave

import (
	"errors"
	"fmt"
)

// Domain errors for solver runs.
var (
	// ErrInvalidParameter indicates a parameter outside its declared domain.
	ErrInvalidParameter = errors.New("wave: invalid parameter")

	// ErrCourantViolation indicates c*dt/dx exceeds the stability limit.
	ErrCourantViolation = errors.New("wave: courant number exceeds stability limit")

	// ErrNumericalInstability indicates the computed field contains NaN or Inf.
	ErrNumericalInstability = errors.New("wave: numerical instability (non-finite height)")
)

// ParamError reports which parameter failed validation and why.
type ParamError struct {
	Field      string
	Constraint string
	Value      any
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("wave: invalid parameter %s=%v: must satisfy %s", e.Field, e.Value, e.Constraint)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

type CourantError struct {
	Courant float64
	Limit   float64
}

func (e *CourantError) Error() string {
	return fmt.Sprintf("wave: courant number c*dt/dx = %g exceeds stability limit %g", e.Courant, e.Limit)
}

func (e *CourantError) Unwrap() error { return ErrCourantViolation }

// InstabilityError locates the first non-finite sample of a diverged run.
type InstabilityError struct {
	Step  int
	Index int
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("wave: non-finite height at step %d, index %d", e.Step, e.Index)
}

func (e *InstabilityError) Unwrap() error { return ErrNumericalInstability }
