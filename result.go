package purestate

import (
	"github.com/samber/mo"
)

// ============================================================================
// Result-Carrying State
// ============================================================================

// The combinator has no error channel of its own. A step that can fail yields
// mo.Result[A]; the helpers below sequence such steps and stop at the first Err.
// The state produced before the failure is kept.

// Succeed yields Ok(v) without touching the state.
func Succeed[S, A any](v A) StateFunc[S, mo.Result[A]] {
	return Pure[S](mo.Ok(v))
}

// Fail yields Err(err) without touching the state.
func Fail[S, A any](err error) StateFunc[S, mo.Result[A]] {
	return Pure[S](mo.Err[A](err))
}

// LiftResult wraps the result of an infallible action in Ok.
func LiftResult[S, A any](m StateFunc[S, A]) StateFunc[S, mo.Result[A]] {
	return Map(m, mo.Ok[A])
}

// AndThenResult sequences fallible steps. When m yields Err the continuation
// is skipped and the error is returned with m's state.
func AndThenResult[S, A, B any](m StateFunc[S, mo.Result[A]], f func(A) StateFunc[S, mo.Result[B]]) StateFunc[S, mo.Result[B]] {
	return func(s S) (S, mo.Result[B]) {
		mid, res := m(s)
		a, err := res.Get()
		if err != nil {
			return mid, mo.Err[B](err)
		}
		return f(a)(mid)
	}
}

// MapResult transforms an Ok result and passes errors through.
func MapResult[S, A, B any](m StateFunc[S, mo.Result[A]], f func(A) B) StateFunc[S, mo.Result[B]] {
	return Map(m, func(res mo.Result[A]) mo.Result[B] {
		a, err := res.Get()
		if err != nil {
			return mo.Err[B](err)
		}
		return mo.Ok(f(a))
	})
}

// Guard fails with err when cond is false.
func Guard[S any](cond bool, err error) StateFunc[S, mo.Result[Unit]] {
	if cond {
		return Succeed[S](Unit{})
	}
	return Fail[S, Unit](err)
}
