package purestate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ============================================================================
// Result-Carrying State Tests
// ============================================================================

var errNegative = errors.New("negative balance")

func withdraw(amount int) StateFunc[int, mo.Result[int]] {
	return func(balance int) (int, mo.Result[int]) {
		if amount > balance {
			return balance, mo.Err[int](errNegative)
		}
		return balance - amount, mo.Ok(balance - amount)
	}
}

func TestAndThenResult_Success(t *testing.T) {
	m := AndThenResult(withdraw(30), func(int) StateFunc[int, mo.Result[int]] {
		return withdraw(20)
	})

	s, res := m.Run(100)

	if s != 50 {
		t.Errorf("expected balance 50, got %d", s)
	}
	if v, err := res.Get(); err != nil || v != 50 {
		t.Errorf("expected Ok(50), got (%d, %v)", v, err)
	}
}

func TestAndThenResult_ShortCircuits(t *testing.T) {
	called := false
	m := AndThenResult(withdraw(200), func(int) StateFunc[int, mo.Result[int]] {
		called = true
		return withdraw(1)
	})

	s, res := m.Run(100)

	if called {
		t.Error("continuation must not run after a failure")
	}
	if s != 100 {
		t.Errorf("state before the failure should be kept, got %d", s)
	}
	if !errors.Is(res.Error(), errNegative) {
		t.Errorf("expected errNegative, got %v", res.Error())
	}
}

func TestSucceedFailLift(t *testing.T) {
	if v, err := Succeed[int](7).Eval(0).Get(); err != nil || v != 7 {
		t.Errorf("Succeed: expected Ok(7), got (%d, %v)", v, err)
	}
	if res := Fail[int, string](errNegative).Eval(0); !res.IsError() {
		t.Error("Fail: expected Err")
	}

	s, res := LiftResult(Modify(func(n int) int { return n * 2 })).Run(4)
	if s != 8 || !res.IsOk() {
		t.Errorf("LiftResult: expected (8, Ok), got (%d, %v)", s, res)
	}
}

func TestMapResult(t *testing.T) {
	doubled := MapResult(withdraw(10), func(n int) int { return n * 2 })

	if v, _ := doubled.Eval(15).Get(); v != 10 {
		t.Errorf("expected 10, got %d", v)
	}
	if res := doubled.Eval(5); !errors.Is(res.Error(), errNegative) {
		t.Errorf("expected error to pass through, got %v", res.Error())
	}
}

func TestGuard(t *testing.T) {
	if !Guard[int](true, errNegative).Eval(0).IsOk() {
		t.Error("Guard(true) should succeed")
	}
	if res := Guard[int](false, errNegative).Eval(0); !errors.Is(res.Error(), errNegative) {
		t.Errorf("Guard(false) should fail with the given error, got %v", res.Error())
	}
}

// ============================================================================
// Functor Instance Tests
// ============================================================================

func TestOptionFunctor(t *testing.T) {
	f := OptionFunctor[int, string]()
	show := func(n int) string { return lo.Ternary(n > 0, "pos", "non-pos") }

	if got := f.Map(mo.Some(3), show); got.OrEmpty() != "pos" {
		t.Errorf("expected Some(pos), got %v", got)
	}
	if got := f.Map(mo.None[int](), show); got.IsPresent() {
		t.Errorf("expected None, got %v", got)
	}
}

func TestSliceFunctor(t *testing.T) {
	f := SliceFunctor[string, int]()

	got := f.Map([]string{"a", "bb", "a"}, func(s string) int { return len(s) })
	if !reflect.DeepEqual(got, []int{1, 2, 1}) {
		t.Errorf("expected [1 2 1], got %v", got)
	}
	if f.Map(nil, func(string) int { return 0 }) != nil {
		t.Error("mapping nil should yield nil")
	}
}

func TestResultFunctor(t *testing.T) {
	f := ResultFunctor[int, int]()
	inc := func(n int) int { return n + 1 }

	if v := f.Map(mo.Ok(1), inc).MustGet(); v != 2 {
		t.Errorf("expected Ok(2), got %d", v)
	}
	if res := f.Map(mo.Err[int](errNegative), inc); !errors.Is(res.Error(), errNegative) {
		t.Errorf("expected error to pass through, got %v", res.Error())
	}
}

func TestEitherFunctor(t *testing.T) {
	f := EitherFunctor[string, int, int]()
	inc := func(n int) int { return n + 1 }

	if r := f.Map(mo.Right[string](1), inc); r.MustRight() != 2 {
		t.Errorf("expected Right(2), got %v", r)
	}
	if l := f.Map(mo.Left[string, int]("bad"), inc); l.MustLeft() != "bad" {
		t.Errorf("expected Left(bad), got %v", l)
	}
}

func TestStateFunctor(t *testing.T) {
	f := StateFunctor[int, string, int]()

	s, a := f.Map(counter, func(s string) int { return len(s) }).Run(10)
	if s != 11 || a != 2 {
		t.Errorf("expected (11, 2), got (%d, %d)", s, a)
	}
}

// Counter-example: DedupSliceFunctor is lawless on purpose.
func TestDedupSliceFunctor_BreaksIdentity(t *testing.T) {
	f := DedupSliceFunctor[int, int]()
	in := []int{1, 1}

	got := f.Map(in, Identity[int])

	if reflect.DeepEqual(got, in) {
		t.Fatalf("expected identity law to fail for %v, got equal result", in)
	}
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("expected [1], got %v", got)
	}
}

func TestCompose(t *testing.T) {
	f := Compose(func(n int) int { return n + 1 }, func(n int) int { return n * 10 })

	if got := f(1); got != 20 {
		t.Errorf("Compose must apply left first: expected 20, got %d", got)
	}
}
