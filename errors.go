package gaussquad

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRule is returned by Store.Rule for a name that was never registered.
	ErrUnknownRule = errors.New("gaussquad: unknown rule")

	// ErrInvalidInterval is returned when an interval has A >= B or a non-finite bound.
	ErrInvalidInterval = errors.New("gaussquad: invalid interval")

	// ErrInvalidRule is returned when a node table cannot be a quadrature rule on [-1, 1].
	ErrInvalidRule = errors.New("gaussquad: invalid rule")

	ErrDuplicateRule = errors.New("gaussquad: duplicate rule label")
	ErrEmptyStore    = errors.New("gaussquad: no rules")
)

// UnknownRuleError carries the name that failed the lookup.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownRule, e.Name)
}

func (e *UnknownRuleError) Is(target error) bool {
	return target == ErrUnknownRule
}

// InvalidIntervalError carries the rejected bounds.
type InvalidIntervalError struct {
	Interval Interval
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("%v: [%v, %v]", ErrInvalidInterval, e.Interval.A, e.Interval.B)
}

func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}
