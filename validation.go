package purestate

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ============================================================================
// Validation
// ============================================================================

// ValidationError reports a rule failure on a named field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Rule checks a value and returns nil when it passes.
type Rule[A any] func(A) error

// Check builds a rule that fails with a ValidationError when ok returns false.
func Check[A any](field, reason string, ok func(A) bool) Rule[A] {
	return func(a A) error {
		if ok(a) {
			return nil
		}
		return &ValidationError{Field: field, Reason: reason}
	}
}

// ValidateFirst applies rules in order and stops at the first failure.
// This is the monadic reading: each rule runs only if the previous passed.
func ValidateFirst[A any](v A, rules ...Rule[A]) mo.Result[A] {
	for _, rule := range rules {
		if err := rule(v); err != nil {
			return mo.Err[A](err)
		}
	}
	return mo.Ok(v)
}

// ValidateAll applies every rule and reports all failures, joined in rule order.
// This is the applicative reading: rules are independent of each other.
func ValidateAll[A any](v A, rules ...Rule[A]) mo.Result[A] {
	var errs []error
	for _, rule := range rules {
		if err := rule(v); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return mo.Err[A](errors.Join(errs...))
	}
	return mo.Ok(v)
}
