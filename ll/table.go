package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/ll1/ll/sparse"
)

// CellKind tags the variant of a table cell.
type CellKind int8

// A table cell is either absent (an error cell), the empty production, or
// a non-empty production.
const (
	Absent CellKind = iota
	Empty
	Production
)

func (k CellKind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Empty:
		return "empty"
	case Production:
		return "production"
	}
	return "<unknown cell kind>"
}

// Cell is an entry M[N,a] of a parsing table.
// For kinds Empty and Production, Rule is the production of the cell.
type Cell struct {
	Kind CellKind
	Rule *Rule
}

// IsError is true for absent cells.
func (c Cell) IsError() bool {
	return c.Kind == Absent
}

// RHS returns the symbols to push for the cell, or nil for absent and empty cells.
func (c Cell) RHS() []Symbol {
	if c.Kind != Production {
		return nil
	}
	return c.Rule.RHS()
}

func (c Cell) String() string {
	if c.Kind == Absent {
		return "<none>"
	}
	return c.Rule.String()
}

func cellFor(g *Grammar, v int32, null int32) Cell {
	if v == null {
		return Cell{Kind: Absent}
	}
	r := g.Rule(int(v))
	if r == nil {
		return Cell{Kind: Absent}
	}
	if r.IsEpsilon() {
		return Cell{Kind: Empty, Rule: r}
	}
	return Cell{Kind: Production, Rule: r}
}

// --- Table -----------------------------------------------------------------

// Table is an LL(1) parsing table M: (non-terminal × terminal) → production.
// Rows are the non-terminals of a grammar, columns are its terminals
// (including the end-marker). Tables are created by a TableBuilder and are
// read-only afterwards.
type Table struct {
	g      *Grammar
	matrix *sparse.IntMatrix
}

// Grammar returns the grammar this table has been built for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Lookup returns cell M[N,a]. Symbols not known to the grammar yield
// an absent cell. If the cell holds conflicting productions, the first one
// entered is returned.
func (t *Table) Lookup(N Symbol, a Symbol) Cell {
	c, _ := t.Values(N, a)
	return c
}

// Values returns both entries of cell M[N,a]. The second one is absent unless
// the table has a conflict at this position.
func (t *Table) Values(N Symbol, a Symbol) (Cell, Cell) {
	i, iok := t.g.ntIndex[N]
	j, jok := t.g.tIndex[a]
	if !iok || !jok {
		return Cell{Kind: Absent}, Cell{Kind: Absent}
	}
	v1, v2 := t.matrix.Values(i, j)
	null := t.matrix.NullValue()
	return cellFor(t.g, v1, null), cellFor(t.g, v2, null)
}

// Each calls f for every cell of the table, including absent ones, row by row.
// Rows are in order of Grammar.NonTerminals, columns in order of Grammar.Terminals.
func (t *Table) Each(f func(N, a Symbol, c Cell)) {
	T := t.g.Terminals()
	for _, N := range t.g.nonterminals {
		for _, a := range T {
			f(N, a, t.Lookup(N, a))
		}
	}
}

// HasConflicts is true if at least one cell holds more than one production.
func (t *Table) HasConflicts() bool {
	return t.matrix.Conflicts() > 0
}

// Size returns the number of non-error cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// tableDigest is the hashed representation of a table.
type tableDigest struct {
	Grammar string
	Rules   []string
	Cells   []string
}

// Fingerprint returns a digest of the rules and the cells of a table.
// Two tables with equal fingerprints drive the automaton identically.
func (t *Table) Fingerprint() string {
	d := tableDigest{Grammar: t.g.Name}
	for _, r := range t.g.rules {
		d.Rules = append(d.Rules, r.String())
	}
	t.matrix.Each(func(i, j int, a, b int32) {
		d.Cells = append(d.Cells, fmt.Sprintf("%d,%d:%d/%d", i, j, a, b))
	})
	h, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot compute table fingerprint: %v", err)
		return ""
	}
	return h
}

// --- Table Builder ---------------------------------------------------------

// TableBuilder creates a parsing table for a grammar, one cell at a time.
// It is intended to be fed from the output of a table construction step,
// which is not part of this package.
type TableBuilder struct {
	table *Table
}

// NewTableBuilder creates a table builder for grammar g, with all cells absent.
func NewTableBuilder(g *Grammar) *TableBuilder {
	m := len(g.nonterminals)
	n := g.terminals.Size()
	tracer().Infof("LL(1) table of size %d x %d", m, n)
	return &TableBuilder{
		table: &Table{
			g:      g,
			matrix: sparse.NewIntMatrix(m, n, sparse.DefaultNullValue),
		},
	}
}

// Set enters rule r into cell M[N,a]. If the cell is already occupied by a
// different rule, the table is marked as having conflicts; the first rule
// stays the primary entry.
func (tb *TableBuilder) Set(N Symbol, a Symbol, r *Rule) error {
	g := tb.table.g
	i, ok := g.ntIndex[N]
	if !ok {
		return fmt.Errorf("table row %s is not a non-terminal of grammar %s", N, g.Name)
	}
	j, ok := g.tIndex[a]
	if !ok {
		return fmt.Errorf("table column %s is not a terminal of grammar %s", a, g.Name)
	}
	if r == nil || g.Rule(r.Serial) != r {
		return fmt.Errorf("M[%s,%s]: rule is not part of grammar %s", N, a, g.Name)
	}
	if r.LHS != N {
		return fmt.Errorf("M[%s,%s]: rule %s has a different LHS", N, a, r)
	}
	if v := tb.table.matrix.Value(i, j); v != tb.table.matrix.NullValue() && v != int32(r.Serial) {
		tracer().Infof("conflict in M[%s,%s]: %s / %s", N, a, g.Rule(int(v)), r)
	}
	tb.table.matrix.Add(i, j, int32(r.Serial))
	return nil
}

// SetRHS enters a cell given in textual form, as table construction tools
// usually print them: blank-separated RHS symbols, "ε" for the empty
// production. An empty string or one of the error markers ("erro", "error")
// leaves the cell absent.
func (tb *TableBuilder) SetRHS(N Symbol, a Symbol, rhs string) error {
	rhs = strings.TrimSpace(rhs)
	if rhs == "" || rhs == "erro" || rhs == "error" {
		return nil
	}
	r, ok := tb.table.g.FindRule(N, Symbols(rhs))
	if !ok {
		return fmt.Errorf("M[%s,%s]: no rule %s ::= %s in grammar", N, a, N, rhs)
	}
	return tb.Set(N, a, r)
}

// SetRows enters a complete table in textual form, keyed by non-terminal
// and terminal names (see SetRHS). Returns the first error encountered.
func (tb *TableBuilder) SetRows(rows map[string]map[string]string) error {
	for N, row := range rows {
		for a, rhs := range row {
			if err := tb.SetRHS(Symbol(N), Symbol(a), rhs); err != nil {
				return err
			}
		}
	}
	return nil
}

// Table returns the table built so far.
func (tb *TableBuilder) Table() *Table {
	return tb.table
}
