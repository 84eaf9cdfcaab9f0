package purestate

// ============================================================================
// Lenses
// ============================================================================

// Lens focuses on a field A inside a larger state S.
// Set must return a new S; it never mutates the source.
//
// Example:
//
//	common := NewLens(
//	    func(f Fields) []string { return f.Common },
//	    func(f Fields, v []string) Fields { f.Common = v; return f },
//	)
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get reads the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a copy of source with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies fn to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// IdentityLens focuses on the whole state.
func IdentityLens[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// ComposeLens focuses inner within the value focused by outer.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// Zoom runs an action written for the field A against the whole state S.
// Everything outside the focus is carried over unchanged.
func Zoom[S, A, R any](l Lens[S, A], m StateFunc[A, R]) StateFunc[S, R] {
	return func(s S) (S, R) {
		field, r := m(l.get(s))
		return l.set(s, field), r
	}
}

// Use reads the focused field.
func Use[S, A any](l Lens[S, A]) StateFunc[S, A] {
	return Gets(l.get)
}

// Assign overwrites the focused field.
func Assign[S, A any](l Lens[S, A], v A) StateFunc[S, Unit] {
	return Zoom(l, Put(v))
}

// Over applies f to the focused field.
func Over[S, A any](l Lens[S, A], f func(A) A) StateFunc[S, Unit] {
	return Zoom(l, Modify(f))
}
