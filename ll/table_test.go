package ll

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var sampleTable = map[string]map[string]string{
	"S": {"a": "A d", "b": "erro", "c": "A d", "d": "A d", "$": "erro"},
	"A": {"a": "a B", "b": "erro", "c": "c D", "d": "d S", "$": "erro"},
	"B": {"a": "erro", "b": "b C", "c": "erro", "d": "d D", "$": "erro"},
	"C": {"a": "erro", "b": "erro", "c": "c A", "d": "ε", "$": "erro"},
	"D": {"a": "a B", "b": "erro", "c": "erro", "d": "erro", "$": "erro"},
}

func makeTable(t *testing.T, g *Grammar) *Table {
	tb := NewTableBuilder(g)
	if err := tb.SetRows(sampleTable); err != nil {
		t.Fatal(err)
	}
	return tb.Table()
}

func TestTableLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g := makeGrammar(t)
	table := makeTable(t, g)
	if table.HasConflicts() {
		t.Errorf("sample table should not have conflicts")
	}
	if table.Size() != 11 {
		t.Errorf("expected 11 production cells, have %d", table.Size())
	}
	c := table.Lookup("S", "a")
	if c.Kind != Production || c.Rule != g.Rule(0) {
		t.Errorf("expected M[S,a] = S ::= A d, is %v", c)
	}
	if rhs := c.RHS(); SymbolString(rhs) != "A d" {
		t.Errorf("expected RHS [A d], is %v", rhs)
	}
	if c := table.Lookup("C", "d"); c.Kind != Empty {
		t.Errorf("expected M[C,d] to be the empty production, is %v", c)
	}
	if c := table.Lookup("S", "b"); !c.IsError() {
		t.Errorf("expected M[S,b] to be absent, is %v", c)
	}
	if c := table.Lookup("S", "x"); !c.IsError() {
		t.Errorf("expected cell for unknown terminal to be absent, is %v", c)
	}
	if c := table.Lookup("a", "a"); !c.IsError() {
		t.Errorf("expected cell for terminal row to be absent, is %v", c)
	}
}

func TestTableConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g := makeGrammar(t)
	tb := NewTableBuilder(g)
	tb.Set("A", "a", g.Rule(1))
	tb.Set("A", "a", g.Rule(1))
	if tb.Table().HasConflicts() {
		t.Errorf("entering a rule twice should not be a conflict")
	}
	tb.Set("A", "a", g.Rule(3))
	if !tb.Table().HasConflicts() {
		t.Errorf("expected table to have a conflict in M[A,a]")
	}
	c1, c2 := tb.Table().Values("A", "a")
	if c1.Rule != g.Rule(1) || c2.Rule != g.Rule(3) {
		t.Errorf("expected M[A,a] = {%s, %s}, is {%v, %v}", g.Rule(1), g.Rule(3), c1, c2)
	}
	if err := tb.Set("A", "b", g.Rule(0)); err == nil {
		t.Errorf("expected error for rule with different LHS")
	}
	if err := tb.SetRHS("A", "b", "b b"); err == nil {
		t.Errorf("expected error for unknown production")
	}
	if err := tb.Set("Z", "b", g.Rule(0)); err == nil {
		t.Errorf("expected error for unknown row")
	}
}

func TestTableFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g := makeGrammar(t)
	fp1 := makeTable(t, g).Fingerprint()
	fp2 := makeTable(t, g).Fingerprint()
	if fp1 == "" || fp1 != fp2 {
		t.Errorf("expected equal, non-empty fingerprints, got %q and %q", fp1, fp2)
	}
	tb := NewTableBuilder(g)
	tb.SetRows(sampleTable)
	tb.Set("C", "$", g.Rule(7))
	if fp3 := tb.Table().Fingerprint(); fp3 == fp1 {
		t.Errorf("expected different fingerprint for modified table")
	}
}

func TestTableAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g := makeGrammar(t)
	var buf bytes.Buffer
	TableAsHTML(makeTable(t, g), &buf)
	out := buf.String()
	if !strings.Contains(out, `<tr id="row-S">`) {
		t.Errorf("expected a row for S in HTML output")
	}
	if strings.Count(out, `class="production"`) != 11 {
		t.Errorf("expected 11 production cells in HTML output")
	}
	if !strings.Contains(out, "C ::= ε") {
		t.Errorf("expected epsilon production in HTML output")
	}
}
