package purestate

import (
	"golang.org/x/exp/constraints"
)

// ============================================================================
// Monoids
// ============================================================================

// Monoid is an explicit dictionary for an associative Append with an Empty identity.
//
// Instances are plain values passed at the call site:
//
//	Concat(SliceMonoid[string](), [][]string{{"a"}, {"b"}}) // ["a", "b"]
type Monoid[A any] struct {
	Empty  func() A
	Append func(A, A) A
}

// Number covers the built-in numeric kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// StringMonoid concatenates strings.
var StringMonoid = Monoid[string]{
	Empty:  func() string { return "" },
	Append: func(a, b string) string { return a + b },
}

// SliceMonoid appends slices. Append always allocates, so neither operand is
// aliased by the result.
func SliceMonoid[A any]() Monoid[[]A] {
	return Monoid[[]A]{
		Empty: func() []A { return nil },
		Append: func(a, b []A) []A {
			if len(a)+len(b) == 0 {
				return nil
			}
			out := make([]A, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// SumMonoid adds numbers.
func SumMonoid[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:  func() N { return 0 },
		Append: func(a, b N) N { return a + b },
	}
}

// Concat folds xs with the monoid, left to right.
func Concat[A any](m Monoid[A], xs []A) A {
	result := m.Empty()
	for _, x := range xs {
		result = m.Append(result, x)
	}
	return result
}

// FoldMap maps and then folds in one pass.
func FoldMap[A, B any](xs []A, m Monoid[B], f func(A) B) B {
	result := m.Empty()
	for _, x := range xs {
		result = m.Append(result, f(x))
	}
	return result
}

// Collect runs steps left to right and appends their results with m.
// With no steps it yields m.Empty() and leaves the state unchanged.
func Collect[S, W any](m Monoid[W], steps ...StateFunc[S, W]) StateFunc[S, W] {
	return func(s S) (S, W) {
		acc := m.Empty()
		for _, step := range steps {
			var w W
			s, w = step(s)
			acc = m.Append(acc, w)
		}
		return s, acc
	}
}
