package purestate

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ============================================================================
// Functor Instances
// ============================================================================

// Functor is an explicit Map dictionary from wrapper FA (holding A) to FB (holding B).
// Go has no higher-kinded types, so each wrapper gets its own constructor and
// the instance is passed where it is needed.
//
// Lawful instances satisfy, for every fa:
//
//	Map(fa, Identity) == fa
//	Map(fa, Compose(f, g)) == Map(Map(fa, f), g)
//
// Example:
//
//	lengths := SliceFunctor[string, int]()
//	lengths.Map([]string{"a", "bc"}, func(s string) int { return len(s) }) // [1, 2]
type Functor[A, B, FA, FB any] struct {
	Name string
	Map  func(FA, func(A) B) FB
}

// Identity returns its argument.
func Identity[A any](a A) A {
	return a
}

// Compose is left-to-right composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// OptionFunctor maps the present value of an mo.Option.
func OptionFunctor[A, B any]() Functor[A, B, mo.Option[A], mo.Option[B]] {
	return Functor[A, B, mo.Option[A], mo.Option[B]]{
		Name: "option",
		Map: func(fa mo.Option[A], f func(A) B) mo.Option[B] {
			a, ok := fa.Get()
			if !ok {
				return mo.None[B]()
			}
			return mo.Some(f(a))
		},
	}
}

// SliceFunctor maps every element, keeping length and order.
func SliceFunctor[A, B any]() Functor[A, B, []A, []B] {
	return Functor[A, B, []A, []B]{
		Name: "slice",
		Map: func(fa []A, f func(A) B) []B {
			if fa == nil {
				return nil
			}
			return lo.Map(fa, func(a A, _ int) B { return f(a) })
		},
	}
}

// ResultFunctor maps an Ok value and passes errors through.
func ResultFunctor[A, B any]() Functor[A, B, mo.Result[A], mo.Result[B]] {
	return Functor[A, B, mo.Result[A], mo.Result[B]]{
		Name: "result",
		Map: func(fa mo.Result[A], f func(A) B) mo.Result[B] {
			a, err := fa.Get()
			if err != nil {
				return mo.Err[B](err)
			}
			return mo.Ok(f(a))
		},
	}
}

// EitherFunctor maps the right side of an mo.Either and keeps a left unchanged.
func EitherFunctor[L, A, B any]() Functor[A, B, mo.Either[L, A], mo.Either[L, B]] {
	return Functor[A, B, mo.Either[L, A], mo.Either[L, B]]{
		Name: "either",
		Map: func(fa mo.Either[L, A], f func(A) B) mo.Either[L, B] {
			if l, ok := fa.Left(); ok {
				return mo.Left[L, B](l)
			}
			return mo.Right[L](f(fa.MustRight()))
		},
	}
}

// StateFunctor is the Functor view of Map for actions over S.
func StateFunctor[S, A, B any]() Functor[A, B, StateFunc[S, A], StateFunc[S, B]] {
	return Functor[A, B, StateFunc[S, A], StateFunc[S, B]]{
		Name: "state",
		Map:  Map[S, A, B],
	}
}

// DedupSliceFunctor maps every element and then drops repeated outputs.
//
// It is not a lawful functor: mapping Identity over [1, 1] yields [1]. It
// exists as the counter-example that shows what breaking the identity law
// looks like; do not use it where Functor behaviour is assumed.
func DedupSliceFunctor[A, B comparable]() Functor[A, B, []A, []B] {
	return Functor[A, B, []A, []B]{
		Name: "dedup-slice",
		Map: func(fa []A, f func(A) B) []B {
			if fa == nil {
				return nil
			}
			return lo.Uniq(lo.Map(fa, func(a A, _ int) B { return f(a) }))
		},
	}
}
