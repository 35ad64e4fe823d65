/*
Package generator implements interactive LL(1) derivations. Instead of
consuming an input sentence, a derivation session is driven by productions
chosen from outside, e.g. by a user selecting cells of a rendered parse table,
by a test or by replaying a recorded script. The session generates the
sentence as it goes.

After each chosen production, the session consumes all terminals which have
become the top of stack, until a non-terminal is exposed or the end-marker
has been reached. Thus the top of stack of a running session is always a
non-terminal, which is the row of the table the next choice has to come from.

	session := generator.NewSession(table)
	session.ChooseProduction(g.Rule(0))   // S ::= a S b
	session.Select("S", "b")              // use cell M[S,b], i.e. S ::= ε
	result := session.Result()            // Accepted, sentence "a b"

A session does not check choices against the table; it trusts the trigger
source. Selecting an error cell rejects the derivation. Sessions which have
terminated do not accept further choices: create a fresh one with Reset.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package generator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
