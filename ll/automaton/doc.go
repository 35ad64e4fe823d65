/*
Package automaton implements the stack automaton at the heart of LL(1)
parsing. It is shared by the recognition driver (package predictive) and the
generation driver (package generator).

The automaton core is deliberately dumb: it knows how to classify symbols,
how to replace a non-terminal on top of the stack by the symbols of a
production, and how to record steps of a derivation in a trace. It never
fails and it never decides anything. Detecting invalid transitions and
mismatches is up to the drivers.

A derivation always starts with a stack

    $ S          (S on top)

and a trace holding a single Init step. Every step recorded afterwards is one
of Match, Produce, Accept or Reject. Traces are append-only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
