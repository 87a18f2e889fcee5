/*
Package stack implements a stack of ints as a singly-linked list which
exclusively owns its nodes.

Every node has exactly one owner at any time: either the list's head or the
next-link of its predecessor. Push and Pop move links between these slots with
linked.Take, which leaves the empty link behind, so a node is never reachable
from two links at once.

Dropping a list tears down its chain iteratively. Stacks with hundreds of
thousands of entries are no problem.

For a generic version with iterators see package list.
*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linked.stack'.
func tracer() tracing.Trace {
	return tracing.Select("linked.stack")
}
