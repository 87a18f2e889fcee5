/*
Package rc implements a minimal reference-counted box.

A Box pairs an allocation with a counter of live references. Clone shares the
box and increments the counter, Drop releases one reference and frees the box
when the counter reaches zero. TryUnwrap moves the value out of a box, but only
if the caller holds the last reference.

Go is garbage-collected, so counting references is not required for memory
safety. Persistent lists use it to make sharing explicit: a node is released
exactly once, at the moment its last owner lets go of it, and clients may
observe that moment.

Concurrency

The counter is a plain integer. Boxes must not be cloned or dropped from
multiple goroutines concurrently; doing so requires external synchronization.
Reading the value of a live box is always safe, as it is never mutated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rc

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linked.rc'.
func tracer() tracing.Trace {
	return tracing.Select("linked.rc")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rc: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}
