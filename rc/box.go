package rc

// Box is a reference-counted allocation holding an immutable value.
// A new box has a count of 1, owned by whoever called New.
type Box[T any] struct {
	value     T
	refs      int
	onRelease func(T)
}

// Option is a type to help configuring boxes at creation time.
type Option[T any] func(*Box[T])

// OnRelease sets a function to be called with the value of a box when
// the box is freed by Drop. It is not called for values moved out by TryUnwrap,
// as these are handed over to the caller.
func OnRelease[T any](f func(T)) Option[T] {
	return func(b *Box[T]) {
		b.onRelease = f
	}
}

// New allocates a box for value, with a reference count of 1.
func New[T any](value T, opts ...Option[T]) *Box[T] {
	b := &Box[T]{value: value, refs: 1}
	for _, option := range opts {
		option(b)
	}
	return b
}

// --- API -------------------------------------------------------------------

// Value returns the value of a live box.
func (b *Box[T]) Value() T {
	assertThat(b.live(), "use of a box after it has been freed")
	return b.value
}

// Count returns the number of live references to b; 0 for a freed box.
func (b *Box[T]) Count() int {
	if b == nil {
		return 0
	}
	return b.refs
}

// Freed is true if the last reference to b has been released.
func (b *Box[T]) Freed() bool {
	return !b.live()
}

// Shared is true if there is more than one live reference to b.
func (b *Box[T]) Shared() bool {
	return b.Count() > 1
}

// Clone adds a reference to b and returns b. Cloning a nil box returns nil,
// which lets clients clone optional links without checking for nil first.
func (b *Box[T]) Clone() *Box[T] {
	if b == nil {
		return nil
	}
	assertThat(b.live(), "attempt to share a box after it has been freed")
	b.refs++
	return b
}

// Drop releases one reference to b. If it has been the last one, the box is
// freed and Drop returns true. Dropping a nil box is a no-op.
// Dropping a box which has already been freed is an inconsistency and panics.
func (b *Box[T]) Drop() bool {
	if b == nil {
		return false
	}
	assertThat(b.live(), "double release of a box")
	b.refs--
	if b.refs > 0 {
		return false
	}
	v := b.free()
	if b.onRelease != nil {
		b.onRelease(v)
	}
	return true
}

// TryUnwrap moves the value out of b if the caller holds the only reference.
// The box is freed in this case and TryUnwrap returns the value and true.
// Otherwise b is left untouched, the caller still owns its reference, and
// TryUnwrap returns false.
func (b *Box[T]) TryUnwrap() (T, bool) {
	var zero T
	if b == nil || b.refs != 1 {
		return zero, false
	}
	b.refs = 0
	return b.free(), true
}

func (b *Box[T]) live() bool {
	return b != nil && b.refs > 0
}

// free clears the box and returns its former value.
func (b *Box[T]) free() T {
	v := b.value
	var zero T
	b.value = zero
	return v
}
