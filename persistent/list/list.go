package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/linked"
	"github.com/npillmayer/linked/maybe"
	"github.com/npillmayer/linked/rc"
)

// List is a persistent list. The zero value is an empty list ready to use.
//
// Invariant: a node reachable from a live list is never modified once it has
// been published, and it is never freed while any list or node references it.
// If a node is shared, all of its successors are at least as shared as far as
// teardown is concerned: Drop stops at the first shared node.
type List[T any] struct {
	head   *rc.Box[node[T]]
	onFree func(T)
}

// a nil next marks the end of the chain
type node[T any] struct {
	elem T
	next *rc.Box[node[T]]
}

// New creates an empty list, configured with options, if you need any.
// Options are inherited by all lists derived from it.
func New[T any](opts ...Option[T]) List[T] {
	l := List[T]{}
	for _, option := range opts {
		l = option(l)
	}
	return l
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(List[T]) List[T]

// OnFree sets a function to be called for the element of every node freed,
// i.e. released by its last owner.
func OnFree[T any](f func(T)) Option[T] {
	return func(l List[T]) List[T] {
		l.onFree = f
		return l
	}
}

// --- API -------------------------------------------------------------------

// Prepend returns a new list with elem at its head, followed by the elements
// of l. l is not modified and remains a valid list of its own.
func (l List[T]) Prepend(elem T) List[T] {
	n := node[T]{elem: elem, next: l.head.Clone()}
	return List[T]{head: rc.New(n), onFree: l.onFree}
}

// PrependAll prepends elems one after the other, i.e. the last one of elems
// will be the head of the resulting list. Other than chaining calls to Prepend,
// this does not leave intermediate lists which would have to be dropped.
func (l List[T]) PrependAll(elems ...T) List[T] {
	head := l.head.Clone()
	for _, elem := range elems {
		head = rc.New(node[T]{elem: elem, next: head})
	}
	return List[T]{head: head, onFree: l.onFree}
}

// Tail returns the list following the head of l. For an empty list, and for a
// list with a single element, Tail returns an empty list.
// l is not modified.
func (l List[T]) Tail() List[T] {
	t := List[T]{onFree: l.onFree}
	if l.head != nil {
		t.head = l.head.Value().next.Clone()
	}
	return t
}

// Head returns the first element of l, or Nothing for an empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.Value().elem)
}

// Clone returns another owner of the elements of l.
func (l List[T]) Clone() List[T] {
	return List[T]{head: l.head.Clone(), onFree: l.onFree}
}

// IsEmpty is true for a list without elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the elements of l. This is an O(n) operation.
func (l List[T]) Len() int {
	cnt := 0
	for it := l.head; it != nil; it = it.Value().next {
		cnt++
	}
	return cnt
}

// Drop releases the ownership l holds on its elements and leaves l empty.
// Nodes not shared by other lists are freed, one after the other, without
// recursion. Dropping an empty list is a no-op.
func (l *List[T]) Drop() {
	cur := linked.Take(&l.head)
	freed := 0
	for cur != nil {
		n, ok := cur.TryUnwrap()
		if !ok {
			// still shared: the suffix from here on belongs to other owners
			cur.Drop()
			tracer().Debugf("drop: stopped at shared node after freeing %d nodes", freed)
			return
		}
		cur = linked.Take(&n.next)
		assertThat(cur == nil || !cur.Freed(), "successor of a live node has been freed")
		if l.onFree != nil {
			l.onFree(n.elem)
		}
		freed++
	}
	if freed > 0 {
		tracer().Debugf("drop: freed %d nodes", freed)
	}
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for it := l.head; it != nil; {
		n := it.Value()
		if it != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
		it = n.next
	}
	b.WriteByte(')')
	return b.String()
}
