// Package purestate provides a lawful, generic state-transition combinator for Go.
//
// A StateFunc describes a pure computation that consumes a state value and
// produces a new state value together with a result. Actions are built from
// plain functions, composed with Map and AndThen, and only evaluated when Run
// is called with a concrete starting state.
//
// # Key Properties
//
// - Immutable: an action is a description, never an executed effect
// - Lawful: Map and AndThen satisfy the Functor and Monad laws
// - No error channel: failures travel in the result type (see Succeed and Fail)
// - Safe to share: the same action may be run concurrently with different states
package purestate

import (
	"errors"
)

// ErrNilTransition is the panic value raised by Of when given a nil transition.
var ErrNilTransition = errors.New("purestate: nil transition function")

// Unit is the information-less result of actions run only for their state change.
type Unit = struct{}

// ============================================================================
// Core Combinator
// ============================================================================

// StateFunc is a deferred state transition: given a state it returns the next
// state and a result.
//
// Example:
//
//	counter := StateFunc[int, string](func(n int) (int, string) {
//	    return n + 1, fmt.Sprintf("was %d", n)
//	})
//
//	next, msg := counter.Run(41) // 42, "was 41"
type StateFunc[S, A any] func(S) (S, A)

// Of wraps a pure transition function into an action.
//
// The transition must be total and free of hidden side effects. Impure
// transitions are not detected; they only make results non-reproducible.
func Of[S, A any](transition func(S) (S, A)) StateFunc[S, A] {
	if transition == nil {
		panic(ErrNilTransition)
	}
	return StateFunc[S, A](transition)
}

// Pure returns an action that leaves the state unchanged and yields v (identity element).
func Pure[S, A any](v A) StateFunc[S, A] {
	return func(s S) (S, A) {
		return s, v
	}
}

// Run executes the action against an initial state.
func (m StateFunc[S, A]) Run(initial S) (S, A) {
	return m(initial)
}

// Eval runs the action and keeps only the result.
func (m StateFunc[S, A]) Eval(initial S) A {
	_, a := m(initial)
	return a
}

// Exec runs the action and keeps only the final state.
func (m StateFunc[S, A]) Exec(initial S) S {
	s, _ := m(initial)
	return s
}

// Map transforms the result of m with f. The state produced by m is passed
// through untouched.
func Map[S, A, B any](m StateFunc[S, A], f func(A) B) StateFunc[S, B] {
	return func(s S) (S, B) {
		next, a := m(s)
		return next, f(a)
	}
}

// AndThen sequences m with the action chosen by f from m's result. The second
// action sees the state produced by m. Each transition runs exactly once.
func AndThen[S, A, B any](m StateFunc[S, A], f func(A) StateFunc[S, B]) StateFunc[S, B] {
	return func(s S) (S, B) {
		mid, a := m(s)
		return f(a)(mid)
	}
}

// ============================================================================
// State Primitives
// ============================================================================

// Get yields the current state as the result.
func Get[S any]() StateFunc[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Gets yields a projection of the current state.
func Gets[S, A any](f func(S) A) StateFunc[S, A] {
	return func(s S) (S, A) {
		return s, f(s)
	}
}

// Put replaces the state.
func Put[S any](next S) StateFunc[S, Unit] {
	return func(S) (S, Unit) {
		return next, Unit{}
	}
}

// Modify replaces the state with f applied to it.
func Modify[S any](f func(S) S) StateFunc[S, Unit] {
	return func(s S) (S, Unit) {
		return f(s), Unit{}
	}
}

// ============================================================================
// Derived Combinators
// ============================================================================

// Then runs m and then next, keeping next's result.
func Then[S, A, B any](m StateFunc[S, A], next StateFunc[S, B]) StateFunc[S, B] {
	return func(s S) (S, B) {
		mid, _ := m(s)
		return next(mid)
	}
}

// Map2 runs ma then mb and combines both results with f.
func Map2[S, A, B, C any](ma StateFunc[S, A], mb StateFunc[S, B], f func(A, B) C) StateFunc[S, C] {
	return func(s S) (S, C) {
		s1, a := ma(s)
		s2, b := mb(s1)
		return s2, f(a, b)
	}
}

// Sequence runs actions left to right and collects their results in order.
func Sequence[S, A any](actions ...StateFunc[S, A]) StateFunc[S, []A] {
	return func(s S) (S, []A) {
		results := make([]A, 0, len(actions))
		for _, m := range actions {
			var a A
			s, a = m(s)
			results = append(results, a)
		}
		return s, results
	}
}

// Traverse builds an action per element of xs and runs them left to right.
func Traverse[S, A, B any](xs []A, f func(A) StateFunc[S, B]) StateFunc[S, []B] {
	return func(s S) (S, []B) {
		results := make([]B, 0, len(xs))
		for _, x := range xs {
			var b B
			s, b = f(x)(s)
			results = append(results, b)
		}
		return s, results
	}
}

// When runs m only if cond holds; otherwise the state is left as is.
func When[S any](cond bool, m StateFunc[S, Unit]) StateFunc[S, Unit] {
	if cond {
		return m
	}
	return Pure[S](Unit{})
}
