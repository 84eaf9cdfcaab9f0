package purestate_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/samber/mo"

	ps "github.com/Pure-Company/purestate"
	"github.com/Pure-Company/purestate/laws"
)

func lawConfig() laws.Config {
	cfg := laws.DefaultConfig()
	cfg.Merge(&laws.Config{MinSuccessfulTests: 200, Seed: 1234})
	return cfg
}

// genFieldConfig generates FieldConfig values with short alphabetic field lists.
func genFieldConfig() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOfN(3, gen.AlphaString()),
		gen.SliceOfN(2, gen.AlphaString()),
	).Map(func(values []interface{}) FieldConfig {
		return FieldConfig{
			CommonFields:    values[0].([]string),
			NonCommonFields: values[1].([]string),
		}
	})
}

// ============================================================================
// Monad Laws for StateFunc
// ============================================================================

func TestStateLaws_Counter(t *testing.T) {
	step := ps.Of(func(n int) (int, int) { return n + 3, n * 2 })

	props, err := laws.StateProperties(lawConfig(), laws.StateFixture[int, int]{
		Action: step,
		F:      func(a int) int { return a + 1 },
		G:      func(a int) int { return a * 7 },
		K: func(a int) ps.StateFunc[int, int] {
			return ps.Of(func(s int) (int, int) { return s - a, s + a })
		},
		H: func(a int) ps.StateFunc[int, int] {
			return ps.Then(ps.Put(a), ps.Pure[int](a%5))
		},
		GenState: gen.IntRange(-1000, 1000),
		GenValue: gen.IntRange(-1000, 1000),
	})
	if err != nil {
		t.Fatalf("StateProperties() error = %v", err)
	}

	props.TestingRun(t)
}

func TestStateLaws_FieldOverrides(t *testing.T) {
	join := func(a []string) string { return strings.Join(a, ",") }
	split := func(s string) []string {
		if s == "" {
			return nil
		}
		return strings.Split(s, ",")
	}

	props, err := laws.StateProperties(lawConfig(), laws.StateFixture[FieldConfig, []string]{
		Action: overrideWith(commonFields, []string{"email"}),
		F:      func(a []string) []string { return append([]string{"first"}, a...) },
		G:      func(a []string) []string { return split(strings.ToUpper(join(a))) },
		K: func(a []string) ps.StateFunc[FieldConfig, []string] {
			return overrideWith(nonCommonFields, a)
		},
		H: func(a []string) ps.StateFunc[FieldConfig, []string] {
			return ps.Then(ps.Over(commonFields, func(c []string) []string {
				return append(append([]string(nil), c...), a...)
			}), ps.Use(commonFields))
		},
		GenState:   genFieldConfig(),
		GenValue:   gen.SliceOfN(2, gen.AlphaString()),
		EqualState: fieldConfigEqual,
		EqualValue: stringsEqual,
	})
	if err != nil {
		t.Fatalf("StateProperties() error = %v", err)
	}

	props.TestingRun(t)
}

// Lens-focused actions must obey the same laws as the actions they wrap.
func TestStateLaws_Zoom(t *testing.T) {
	inner := ps.Of(func(fields []string) ([]string, int) {
		return append(append([]string(nil), fields...), "x"), len(fields)
	})

	props, err := laws.StateProperties(lawConfig(), laws.StateFixture[FieldConfig, int]{
		Action: ps.Zoom(nonCommonFields, inner),
		F:      func(a int) int { return a * 3 },
		G:      func(a int) int { return a - 1 },
		K: func(a int) ps.StateFunc[FieldConfig, int] {
			return ps.Map(ps.Use(commonFields), func(c []string) int { return len(c) + a })
		},
		H: func(a int) ps.StateFunc[FieldConfig, int] {
			return ps.Then(ps.Assign(commonFields, make([]string, a%4)), ps.Pure[FieldConfig](a))
		},
		GenState:   genFieldConfig(),
		GenValue:   gen.IntRange(0, 50),
		EqualState: fieldConfigEqual,
	})
	if err != nil {
		t.Fatalf("StateProperties() error = %v", err)
	}

	props.TestingRun(t)
}

// ============================================================================
// Functor Laws for the Explicit Instances
// ============================================================================

func TestFunctorLaws_Lawful(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	triple := func(n int) int { return n * 3 }

	t.Run("slice", func(t *testing.T) {
		props, err := laws.FunctorProperties(lawConfig(), laws.FunctorFixture[int, []int]{
			Functor: ps.SliceFunctor[int, int](),
			F:       inc,
			G:       triple,
			Gen:     gen.SliceOf(gen.IntRange(0, 5)),
		})
		if err != nil {
			t.Fatalf("FunctorProperties() error = %v", err)
		}
		props.TestingRun(t)
	})

	t.Run("option", func(t *testing.T) {
		props, err := laws.FunctorProperties(lawConfig(), laws.FunctorFixture[int, mo.Option[int]]{
			Functor: ps.OptionFunctor[int, int](),
			F:       inc,
			G:       triple,
			Gen: gen.PtrOf(gen.Int()).Map(func(p *int) mo.Option[int] {
				if p == nil {
					return mo.None[int]()
				}
				return mo.Some(*p)
			}),
		})
		if err != nil {
			t.Fatalf("FunctorProperties() error = %v", err)
		}
		props.TestingRun(t)
	})

	t.Run("state", func(t *testing.T) {
		run := func(m ps.StateFunc[int, int]) [2]int {
			s, a := m.Run(10)
			return [2]int{s, a}
		}
		props, err := laws.FunctorProperties(lawConfig(), laws.FunctorFixture[int, ps.StateFunc[int, int]]{
			Functor: ps.StateFunctor[int, int, int](),
			F:       inc,
			G:       triple,
			Gen: gen.IntRange(-100, 100).Map(func(k int) ps.StateFunc[int, int] {
				return ps.Of(func(s int) (int, int) { return s + k, s * k })
			}),
			Equal: func(a, b ps.StateFunc[int, int]) bool { return run(a) == run(b) },
		})
		if err != nil {
			t.Fatalf("FunctorProperties() error = %v", err)
		}
		props.TestingRun(t)
	})
}

// Counter-example: the dedup instance must be caught breaking the identity law.
func TestFunctorLaws_LawlessCounterExample(t *testing.T) {
	props, err := laws.FunctorProperties(lawConfig(), laws.FunctorFixture[int, []int]{
		Functor: ps.DedupSliceFunctor[int, int](),
		F:       func(n int) int { return n + 1 },
		G:       func(n int) int { return n * 3 },
		Gen:     gen.SliceOfN(4, gen.IntRange(0, 1)),
	})
	if err != nil {
		t.Fatalf("FunctorProperties() error = %v", err)
	}

	var report strings.Builder
	if laws.Verify(props, &report) {
		t.Fatal("expected the dedup functor to violate the identity law")
	}
	if !strings.Contains(report.String(), "dedup-slice functor identity") {
		t.Errorf("expected identity law in the failure report, got:\n%s", report.String())
	}
}

func fieldConfigEqual(a, b FieldConfig) bool {
	return stringsEqual(a.CommonFields, b.CommonFields) && stringsEqual(a.NonCommonFields, b.NonCommonFields)
}

// stringsEqual treats nil and empty slices as equal.
func stringsEqual(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
