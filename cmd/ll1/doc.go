/*
Package main provides a command line tool for LL(1) stack automata.

ll1 recognizes sentences with a predictive parser, prints parsing tables,
and lets users generate sentences by choosing table cells, either given
as arguments, replayed from a script, or interactively in a REPL. Every
derivation is shown as a step-by-step trace of stack and input.

	ll1 parse "a b c d a d a b d d"
	ll1 table --json
	ll1 generate S:a A:a B:b C:d
	ll1 repl --grammar AnBn

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.cli'
func tracer() tracing.Trace {
	return tracing.Select("ll1.cli")
}
