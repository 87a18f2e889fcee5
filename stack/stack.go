package stack

import (
	"github.com/npillmayer/linked"
	"github.com/npillmayer/linked/maybe"
)

// List is a LIFO stack of ints. The zero value is an empty stack ready to use.
type List struct {
	head link
	size int
}

// link is either empty (nil) or owns exactly one node.
type link = *node

type node struct {
	elem int
	next link
}

// New creates an empty stack.
func New() *List {
	return &List{}
}

// Push puts elem on top of the stack.
func (l *List) Push(elem int) {
	n := &node{
		elem: elem,
		next: linked.Take(&l.head), // ownership of the chain moves to the new node
	}
	l.head = n
	l.size++
}

// Pop removes the top element from the stack and returns it, or Nothing if
// the stack is empty.
func (l *List) Pop() maybe.Maybe[int] {
	n := linked.Take(&l.head)
	if n == nil {
		return maybe.Nothing[int]()
	}
	l.head = linked.Take(&n.next)
	l.size--
	return maybe.Just(n.elem)
}

// Len returns the number of elements on the stack.
func (l *List) Len() int {
	return l.size
}

// Drop empties the stack, releasing node after node. It never recurses along
// the chain.
func (l *List) Drop() {
	cur := linked.Take(&l.head)
	cnt := 0
	for cur != nil {
		cur = linked.Take(&cur.next) // cur's node is released here
		cnt++
	}
	l.size = 0
	tracer().Debugf("dropped stack of %d nodes", cnt)
}
