// Package laws builds property-based checks for the Functor and Monad laws.
//
// Each builder takes a fixture (the action or instance under test, a few pure
// functions, generators, and equality) and returns gopter properties that can
// be run from a test with TestingRun or anywhere else with Verify.
//
//	props, err := laws.StateProperties(laws.DefaultConfig(), laws.StateFixture[int, string]{
//	    Action:   counter,
//	    F:        strings.ToUpper,
//	    G:        strings.TrimSpace,
//	    K:        func(a string) purestate.StateFunc[int, string] { ... },
//	    H:        func(a string) purestate.StateFunc[int, string] { ... },
//	    GenState: gen.Int(),
//	    GenValue: gen.AlphaString(),
//	})
//	if err != nil {
//	    t.Fatal(err)
//	}
//	props.TestingRun(t)
package laws

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	ps "github.com/Pure-Company/purestate"
)

// ErrInvalidFixture is returned when a fixture is missing a required field.
var ErrInvalidFixture = errors.New("invalid law fixture")

// Property names, shared by all builders so reports read the same.
const (
	FunctorIdentity    = "functor identity"
	FunctorComposition = "functor composition"
	LeftIdentity       = "left identity"
	RightIdentity      = "right identity"
	Associativity      = "associativity"
	IndependentRuns    = "independent runs"
)

// StateFixture describes an action under test.
//
// GenState must generate values of type S and GenValue values of type A.
// Nil equality functions fall back to reflect.DeepEqual.
type StateFixture[S, A any] struct {
	Action ps.StateFunc[S, A]

	// F and G are pure functions used by the functor composition law.
	F, G func(A) A

	// K and H are continuations used by the identity and associativity laws.
	K, H func(A) ps.StateFunc[S, A]

	GenState gopter.Gen
	GenValue gopter.Gen

	EqualState func(S, S) bool
	EqualValue func(A, A) bool
}

func (fx StateFixture[S, A]) validate() error {
	switch {
	case fx.Action == nil:
		return fmt.Errorf("%w: Action is required", ErrInvalidFixture)
	case fx.F == nil || fx.G == nil:
		return fmt.Errorf("%w: F and G are required", ErrInvalidFixture)
	case fx.K == nil || fx.H == nil:
		return fmt.Errorf("%w: K and H are required", ErrInvalidFixture)
	case fx.GenState == nil || fx.GenValue == nil:
		return fmt.Errorf("%w: GenState and GenValue are required", ErrInvalidFixture)
	}
	return nil
}

// StateProperties returns the five laws plus the independent-runs property for fx.
func StateProperties[S, A any](cfg Config, fx StateFixture[S, A]) (*gopter.Properties, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := fx.validate(); err != nil {
		return nil, err
	}

	eqS := orDeepEqual(fx.EqualState)
	eqA := orDeepEqual(fx.EqualValue)
	same := func(l, r ps.StateFunc[S, A], s S) bool {
		ls, la := l.Run(s)
		rs, ra := r.Run(s)
		return eqS(ls, rs) && eqA(la, ra)
	}
	m := fx.Action

	properties := gopter.NewProperties(cfg.Parameters())

	properties.Property(FunctorIdentity, prop.ForAll(
		func(s S) bool {
			return same(ps.Map(m, ps.Identity[A]), m, s)
		},
		fx.GenState,
	))

	properties.Property(FunctorComposition, prop.ForAll(
		func(s S) bool {
			return same(ps.Map(ps.Map(m, fx.F), fx.G), ps.Map(m, ps.Compose(fx.F, fx.G)), s)
		},
		fx.GenState,
	))

	properties.Property(LeftIdentity, prop.ForAll(
		func(v A, s S) bool {
			return same(ps.AndThen(ps.Pure[S](v), fx.K), fx.K(v), s)
		},
		fx.GenValue, fx.GenState,
	))

	properties.Property(RightIdentity, prop.ForAll(
		func(s S) bool {
			return same(ps.AndThen(m, ps.Pure[S, A]), m, s)
		},
		fx.GenState,
	))

	properties.Property(Associativity, prop.ForAll(
		func(s S) bool {
			left := ps.AndThen(ps.AndThen(m, fx.K), fx.H)
			right := ps.AndThen(m, func(a A) ps.StateFunc[S, A] {
				return ps.AndThen(fx.K(a), fx.H)
			})
			return same(left, right, s)
		},
		fx.GenState,
	))

	properties.Property(IndependentRuns, prop.ForAll(
		func(first, second S) bool {
			fs1, fa1 := m.Run(first)
			m.Run(second)
			fs2, fa2 := m.Run(first)
			return eqS(fs1, fs2) && eqA(fa1, fa2)
		},
		fx.GenState, fx.GenState,
	))

	return properties, nil
}

// FunctorFixture describes a Functor instance under test. Gen must generate
// values of type FA.
type FunctorFixture[A, FA any] struct {
	Functor ps.Functor[A, A, FA, FA]
	F, G    func(A) A
	Gen     gopter.Gen
	Equal   func(FA, FA) bool
}

// FunctorProperties returns the identity and composition laws for fx.Functor.
func FunctorProperties[A, FA any](cfg Config, fx FunctorFixture[A, FA]) (*gopter.Properties, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fx.Functor.Map == nil || fx.F == nil || fx.G == nil || fx.Gen == nil {
		return nil, fmt.Errorf("%w: Functor.Map, F, G and Gen are required", ErrInvalidFixture)
	}

	eq := orDeepEqual(fx.Equal)
	fmap := fx.Functor.Map
	name := func(law string) string {
		if fx.Functor.Name == "" {
			return law
		}
		return fx.Functor.Name + " " + law
	}

	properties := gopter.NewProperties(cfg.Parameters())

	properties.Property(name(FunctorIdentity), prop.ForAll(
		func(fa FA) bool {
			return eq(fmap(fa, ps.Identity[A]), fa)
		},
		fx.Gen,
	))

	properties.Property(name(FunctorComposition), prop.ForAll(
		func(fa FA) bool {
			return eq(fmap(fmap(fa, fx.F), fx.G), fmap(fa, ps.Compose(fx.F, fx.G)))
		},
		fx.Gen,
	))

	return properties, nil
}

// Verify runs properties and writes the report to w. It returns true when
// every property passed.
func Verify(properties *gopter.Properties, w io.Writer) bool {
	if w == nil {
		w = io.Discard
	}
	return properties.Run(gopter.NewFormatedReporter(false, 80, w))
}

func orDeepEqual[T any](eq func(T, T) bool) func(T, T) bool {
	if eq != nil {
		return eq
	}
	return func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	}
}
