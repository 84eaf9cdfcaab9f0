package purestate

// ============================================================================
// Writer
// ============================================================================

// Writer pairs a result with an accumulated log W.
// Combining logs needs a Monoid[W], which BindWriter takes explicitly.
type Writer[W, A any] struct {
	value A
	log   W
}

// WriterOf builds a writer from a value and a log.
func WriterOf[W, A any](value A, log W) Writer[W, A] {
	return Writer[W, A]{value: value, log: log}
}

// Tell records w with a Unit result.
func Tell[W any](w W) Writer[W, Unit] {
	return Writer[W, Unit]{log: w}
}

// Run returns the result and the accumulated log.
func (w Writer[W, A]) Run() (A, W) {
	return w.value, w.log
}

// MapWriter transforms the result and keeps the log.
func MapWriter[W, A, B any](w Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{value: f(w.value), log: w.log}
}

// BindWriter feeds w's result to f and appends f's log after w's.
func BindWriter[W, A, B any](m Monoid[W], w Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	next := f(w.value)
	return Writer[W, B]{value: next.value, log: m.Append(w.log, next.log)}
}

// ============================================================================
// Reader
// ============================================================================

// Reader is a computation that depends on a read-only environment R.
//
// Example:
//
//	timeout := Asks(func(c Config) time.Duration { return c.Timeout })
//	d := timeout.Run(cfg)
type Reader[R, A any] func(R) A

// Run supplies the environment.
func (r Reader[R, A]) Run(env R) A {
	return r(env)
}

// Ask yields the environment itself.
func Ask[R any]() Reader[R, R] {
	return func(env R) R { return env }
}

// Asks yields a projection of the environment.
func Asks[R, A any](f func(R) A) Reader[R, A] {
	return Reader[R, A](f)
}

// MapReader transforms the result of r.
func MapReader[R, A, B any](r Reader[R, A], f func(A) B) Reader[R, B] {
	return func(env R) B { return f(r(env)) }
}

// BindReader runs f's reader against the same environment.
func BindReader[R, A, B any](r Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return func(env R) B { return f(r(env))(env) }
}

// Local runs r against an environment adjusted by f.
func Local[R, A any](r Reader[R, A], f func(R) R) Reader[R, A] {
	return func(env R) A { return r(f(env)) }
}

// FromReader lifts a reader over the state into an action that leaves the
// state unchanged.
func FromReader[S, A any](r Reader[S, A]) StateFunc[S, A] {
	return Gets[S, A](r)
}
