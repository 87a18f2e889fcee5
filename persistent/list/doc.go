/*
Package list implements a persistent singly-linked list with structural sharing.

A list is never modified. Prepend and Tail return new lists, leaving the
receiver valid and unchanged. Lists derived from one another share their
common suffix instead of copying it:

    a := list.New[int]().Prepend(1)   // a = [1]
    b := a.Prepend(2)                 // b = [2 1], shares node 1 with a
    c := a.Prepend(3)                 // c = [3 1], shares node 1 with a and b

Ownership

Nodes are kept in reference-counted boxes (package rc). Every List value owns
one reference to its head node, and every node owns one reference to its
successor. Sharing a list has to go through Clone, Prepend or Tail; plain
assignment of a List copies the handle without adding an owner. An owner is
released with Drop.

Drop walks the chain from the head, freeing each node of which it holds the
last reference. As soon as it hits a node which is still shared, it releases
its reference and stops: every node below a shared node is reachable through
it, hence may be shared as well, and must be neither freed nor inspected.
Option OnFree installs a hook which is called exactly once for every node
freed, at the moment its last owner lets go of it.

Lists are meant to be used from a single goroutine at a time with respect to
Clone, Prepend, Tail and Drop, as these update reference counts without
synchronization. Reading is always safe, as published nodes never change.

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

// tracer traces with key 'persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
