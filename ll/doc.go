/*
Package ll implements prerequisites for LL(1) parsing: a grammar model and
a predictive parsing table.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may contain
epsilon-productions. The left hand side of the first rule is the start symbol.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").T("a").N("S").T("b").End()  // S  ->  a S b
    b.LHS("S").Epsilon()                   // S  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S ::= a S b
   1: S ::= ε

Grammar symbols are values. Two symbols are equal if their names are equal;
whether a symbol is a terminal or a non-terminal is decided by the grammar
(see Grammar.Classify). The end-marker $ is reserved and is neither.

Parsing Tables

Computing FIRST and FOLLOW sets and deriving a table from them is not
part of this package. Clients provide the table cells, usually from the
output of a table construction tool, through a table builder:

    tb := ll.NewTableBuilder(g)
    tb.Set("S", "a", g.Rule(0))     // M[S,a] = S ::= a S b
    tb.Set("S", "b", g.Rule(1))     // M[S,b] = S ::= ε
    tb.Set("S", ll.EOF, g.Rule(1))  // M[S,$] = S ::= ε
    table := tb.Table()

Every cell of a table is either a production, the empty production or absent
(an error cell). The table builder records, but does not resolve, conflicting
entries; check Table.HasConflicts before using a table for recognition.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
