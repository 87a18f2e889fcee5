/*
Package list implements a generic singly-linked list which exclusively owns
its nodes.

The list is a LIFO structure: Push and Pop operate on the head. Each node is
owned either by the head of the list or by the next-link of its predecessor,
never by both. Every operation which relocates a link moves it with linked.Take,
leaving the empty link in the source slot.

Iteration

There are three kinds of iterators, all of them finite:

   IntoIter()   // moves the chain out of the list and pops from it
   Iter()       // read-only traversal; the list stays untouched
   IterMut()    // cursor allowing in-place modification of elements

The mutable cursor never hands out a pointer which survives a step: the current
element may be read, set or updated through a callback, and moving the cursor
invalidates access to the previous element. There is at most one mutable view
into the chain per cursor at any time.

Teardown

Drop releases the nodes of a list one by one in a loop, never recursing along
the chain. A hook may be installed with option OnDrop to observe every
element released this way.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linked.list'.
func tracer() tracing.Trace {
	return tracing.Select("linked.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
