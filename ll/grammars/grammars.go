/*
Package grammars provides ready-made LL(1) grammars together with their
parsing tables.

Tables, FIRST- and FOLLOW-sets are given as data, as they would be
delivered by a table construction tool. Nothing is computed here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammars

import (
	"fmt"
	"sort"

	"github.com/npillmayer/ll1/ll"
)

// Definition bundles a grammar with its parsing table and, for display
// purposes, its FIRST- and FOLLOW-sets.
type Definition struct {
	G      *ll.Grammar
	Table  *ll.Table
	First  map[ll.Symbol][]ll.Symbol
	Follow map[ll.Symbol][]ll.Symbol
}

// source is the textual form of a definition.
type source struct {
	name   string
	rules  [][2]string // LHS, RHS; RHS symbols starting with an upper case letter are non-terminals
	first  map[string]string
	follow map[string]string
	table  map[string]map[string]string
}

// The grammar of the interactive LL(1) analyser.
var sample = source{
	name: "G",
	rules: [][2]string{
		{"S", "A d"},
		{"A", "a B"}, {"A", "c D"}, {"A", "d S"},
		{"B", "b C"}, {"B", "d D"},
		{"C", "c A"}, {"C", "ε"},
		{"D", "a B"},
	},
	first: map[string]string{
		"S": "a c d", "A": "a c d", "B": "b d", "C": "c ε", "D": "a",
	},
	follow: map[string]string{
		"S": "$ d", "A": "d", "B": "d", "C": "d", "D": "d",
	},
	table: map[string]map[string]string{
		"S": {"a": "A d", "b": "erro", "c": "A d", "d": "A d", "$": "erro"},
		"A": {"a": "a B", "b": "erro", "c": "c D", "d": "d S", "$": "erro"},
		"B": {"a": "erro", "b": "b C", "c": "erro", "d": "d D", "$": "erro"},
		"C": {"a": "erro", "b": "erro", "c": "c A", "d": "ε", "$": "erro"},
		"D": {"a": "a B", "b": "erro", "c": "erro", "d": "erro", "$": "erro"},
	},
}

// S ::= a S b | ε
var anbn = source{
	name: "AnBn",
	rules: [][2]string{
		{"S", "a S b"}, {"S", "ε"},
	},
	first:  map[string]string{"S": "a ε"},
	follow: map[string]string{"S": "$ b"},
	table: map[string]map[string]string{
		"S": {"a": "a S b", "b": "ε", "$": "ε"},
	},
}

var sources = map[string]source{
	sample.name: sample,
	anbn.name:   anbn,
}

// Sample returns the sample grammar of the interactive LL(1) analyser:
//
//    S ::= A d
//    A ::= a B  |  c D  |  d S
//    B ::= b C  |  d D
//    C ::= c A  |  ε
//    D ::= a B
//
func Sample() (*Definition, error) {
	return sample.build()
}

// AnBn returns the grammar S ::= a S b | ε.
func AnBn() (*Definition, error) {
	return anbn.build()
}

// Names lists the names of all ready-made grammars, sorted.
func Names() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns a ready-made grammar by name (see Names).
func ByName(name string) (*Definition, error) {
	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("no grammar named %q, known grammars are %v", name, Names())
	}
	return src.build()
}

func (src source) build() (*Definition, error) {
	b := ll.NewGrammarBuilder(src.name)
	lhs := make(map[string]bool)
	for _, r := range src.rules {
		lhs[r[0]] = true
	}
	for _, r := range src.rules {
		rb := b.LHS(r[0])
		rhs := ll.Symbols(r[1])
		if len(rhs) == 0 {
			rb.Epsilon()
			continue
		}
		for _, sym := range rhs {
			if lhs[string(sym)] {
				rb.N(string(sym))
			} else {
				rb.T(string(sym))
			}
		}
		rb.End()
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", src.name, err)
	}
	tb := ll.NewTableBuilder(g)
	if err := tb.SetRows(src.table); err != nil {
		return nil, fmt.Errorf("table for grammar %s: %w", src.name, err)
	}
	return &Definition{
		G:      g,
		Table:  tb.Table(),
		First:  symbolSets(src.first),
		Follow: symbolSets(src.follow),
	}, nil
}

func symbolSets(m map[string]string) map[ll.Symbol][]ll.Symbol {
	sets := make(map[ll.Symbol][]ll.Symbol, len(m))
	for N, s := range m {
		syms := ll.Symbols(s)
		if len(syms) == 0 { // a lone ε
			syms = []ll.Symbol{ll.Epsilon}
		}
		sets[ll.Symbol(N)] = syms
	}
	return sets
}

// --- Export ----------------------------------------------------------------

// Export is the serializable form of a definition, suitable for presentation
// layers. Productions are given in textual form, error cells as "erro".
type Export struct {
	Grammar map[string][]string          `json:"grammar"`
	First   map[string][]string          `json:"first"`
	Follow  map[string][]string          `json:"follow"`
	Table   map[string]map[string]string `json:"table"`
}

// Export converts a definition into its serializable form.
func (def *Definition) Export() Export {
	x := Export{
		Grammar: make(map[string][]string),
		First:   stringSets(def.First),
		Follow:  stringSets(def.Follow),
		Table:   make(map[string]map[string]string),
	}
	for _, r := range def.G.Rules() {
		N := string(r.LHS)
		x.Grammar[N] = append(x.Grammar[N], ll.SymbolString(r.RHS()))
	}
	def.Table.Each(func(N, a ll.Symbol, c ll.Cell) {
		row, ok := x.Table[string(N)]
		if !ok {
			row = make(map[string]string)
			x.Table[string(N)] = row
		}
		if c.IsError() {
			row[string(a)] = "erro"
		} else {
			row[string(a)] = ll.SymbolString(c.RHS())
		}
	})
	return x
}

func stringSets(sets map[ll.Symbol][]ll.Symbol) map[string][]string {
	m := make(map[string][]string, len(sets))
	for N, syms := range sets {
		for _, sym := range syms {
			m[string(N)] = append(m[string(N)], string(sym))
		}
	}
	return m
}
