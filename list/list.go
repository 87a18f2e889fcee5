package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/linked"
	"github.com/npillmayer/linked/maybe"
)

// List is a singly-linked LIFO list. The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T] // nil for the empty link
	size   int
	onDrop func(T)
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New creates an empty list, configured with options, if you need any.
//
//     l := list.New[string]()
//     l.Push("Galaxy")
//
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, option := range opts {
		option(l)
	}
	return l
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(*List[T])

// OnDrop sets a function to be called for every element released by Drop.
// Elements removed by Pop or by iterators are handed to the client and
// therefore are not reported.
func OnDrop[T any](f func(T)) Option[T] {
	return func(l *List[T]) {
		l.onDrop = f
	}
}

// --- API -------------------------------------------------------------------

// Push inserts elem as the new head of the list.
func (l *List[T]) Push(elem T) {
	l.head = &node[T]{
		elem: elem,
		next: linked.Take(&l.head),
	}
	l.size++
}

// Pop removes the head of the list and returns its element, or Nothing for an
// empty list.
func (l *List[T]) Pop() maybe.Maybe[T] {
	n := linked.Take(&l.head)
	if n == nil {
		return maybe.Nothing[T]()
	}
	l.head = linked.Take(&n.next)
	l.size--
	return maybe.Just(linked.Take(&n.elem))
}

// Peek returns the element at the head of the list without removing it, or
// Nothing for an empty list.
func (l *List[T]) Peek() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// PeekMut returns a pointer to the element at the head of the list, allowing
// to modify it in place. The pointer refers to the head until the next
// Push, Pop or Drop.
func (l *List[T]) PeekMut() maybe.Maybe[*T] {
	if l.head == nil {
		return maybe.Nothing[*T]()
	}
	return maybe.Just(&l.head.elem)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty is true for a list without elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Drop releases all nodes of the list, leaving an empty list behind.
// Teardown is iterative: the successor of each node is detached before the
// node itself is released.
func (l *List[T]) Drop() {
	cur := linked.Take(&l.head)
	cnt := 0
	for cur != nil {
		next := linked.Take(&cur.next)
		l.release(cur)
		cur = next
		cnt++
	}
	l.size = 0
	if cnt > 0 {
		tracer().Debugf("dropped %d nodes", cnt)
	}
}

func (l *List[T]) release(n *node[T]) {
	elem := linked.Take(&n.elem)
	if l.onDrop != nil {
		l.onDrop(elem)
	}
}

func (l *List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(']')
	return b.String()
}
