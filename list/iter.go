package list

import (
	"iter"

	"github.com/npillmayer/linked"
	"github.com/npillmayer/linked/maybe"
)

// --- Consuming iterator ----------------------------------------------------

// IntoIter yields the elements of a list by value, in pop order.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves the chain of l into a new iterator. l is empty afterwards and
// may be reused independently of the iterator.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{}
	it.list.head = linked.Take(&l.head)
	it.list.size = linked.Take(&l.size)
	it.list.onDrop = l.onDrop
	return it
}

// Next pops the next element. Once the elements are exhausted, Next returns
// Nothing forever.
func (it *IntoIter[T]) Next() maybe.Maybe[T] {
	return it.list.Pop()
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Seq returns a sequence draining the iterator, for use in range loops.
// Elements not consumed due to an early break remain in the iterator.
func (it *IntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Drop releases the elements not yet yielded.
func (it *IntoIter[T]) Drop() {
	it.list.Drop()
}

// --- Read-only iterator ----------------------------------------------------

// Iter walks the elements of a list from head to end without modifying it.
type Iter[T any] struct {
	next *node[T]
}

// Iter creates a read-only iterator. l must not be structurally modified
// while the iterator is in use.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
}

// Next returns the next element, or Nothing at the end of the list.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	n := it.next
	if n == nil {
		return maybe.Nothing[T]()
	}
	it.next = n.next
	return maybe.Just(n.elem)
}

// All returns a sequence of the elements of l, head first.
// Every call starts a fresh traversal.
//
//     for x := range l.All() { … }
//
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// --- Mutable cursor --------------------------------------------------------

// IterMut is a cursor over the elements of a list, allowing to modify each
// element in place:
//
//     for it := l.IterMut(); it.Next(); {
//         it.Update(func(x *int) { *x *= 2 })
//     }
//
// A cursor has no current element before the first call to Next and after
// Next returned false; accessing it then panics.
type IterMut[T any] struct {
	cur  *node[T]
	next *node[T]
}

// IterMut creates a mutable cursor. l must not be structurally modified while
// the cursor is in use.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: l.head}
}

// Next advances the cursor. Access to the previous element ends here.
func (it *IterMut[T]) Next() bool {
	it.cur = linked.Take(&it.next)
	if it.cur == nil {
		return false
	}
	it.next = it.cur.next
	return true
}

// Value returns the current element.
func (it *IterMut[T]) Value() T {
	assertThat(it.cur != nil, "cursor has no current element")
	return it.cur.elem
}

// Set replaces the current element by v.
func (it *IterMut[T]) Set(v T) {
	assertThat(it.cur != nil, "cursor has no current element")
	it.cur.elem = v
}

// Update calls f with a pointer to the current element. The pointer must not
// be retained beyond the call.
func (it *IterMut[T]) Update(f func(*T)) {
	assertThat(it.cur != nil, "cursor has no current element")
	f(&it.cur.elem)
}
