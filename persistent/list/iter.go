package list

import (
	"iter"

	"github.com/npillmayer/linked/maybe"
	"github.com/npillmayer/linked/rc"
)

// Iter walks the elements of a list from head to end.
type Iter[T any] struct {
	next *rc.Box[node[T]]
}

// Iter creates an iterator over l. As l never changes, any number of iterators
// may be created, one after the other or simultaneously.
func (l List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
}

// Next returns the next element, or Nothing at the end of the list.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	if it.next == nil {
		return maybe.Nothing[T]()
	}
	n := it.next.Value()
	it.next = n.next
	return maybe.Just(n.elem)
}

// All returns a sequence of the elements of l, head first.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.head; it != nil; {
			n := it.Value()
			if !yield(n.elem) {
				return
			}
			it = n.next
		}
	}
}
