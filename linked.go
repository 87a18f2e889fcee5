/*
Package linked is the root of a small family of singly-linked lists which make
ownership of their nodes explicit.

Go has a garbage collector, so nothing in here is needed for memory safety. The
lists nevertheless follow a strict discipline: a link to a node is moved, never
copied, and a moved-from slot is always left holding an empty placeholder. Long
chains are torn down iteratively, and nodes shared between persistent lists are
reference counted, so releasing a node happens exactly once and is observable.

Sub-packages:

   stack             // exclusive list of ints: push and pop
   list              // exclusive generic list with peek and three kinds of iterators
   persistent/list   // persistent list sharing suffixes via reference counting
   rc                // the counted box persistent lists are built on
   maybe             // the empty-result signal returned by all queries

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linked

import "fmt"

// Take moves the value out of slot and leaves the zero value in its place.
// For pointer-like links the zero value is the empty link, i.e. after
//
//     next := linked.Take(&l.head)
//
// the chain is owned by next and l.head is empty.
func Take[T any](slot *T) T {
	var zero T
	return Replace(slot, zero)
}

// Replace moves the value out of slot and installs placeholder instead.
// The prior contents are returned to the caller, who is their only owner afterwards.
func Replace[T any](slot *T, placeholder T) T {
	assertThat(slot != nil, "attempt to move a value out of a nil slot")
	v := *slot
	*slot = placeholder
	return v
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("linked: "+msg, msgargs...)
		panic(msg)
	}
}
