package grammars

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	def, err := Sample()
	if err != nil {
		t.Fatal(err)
	}
	if def.G.Size() != 9 || def.G.Start() != "S" {
		t.Errorf("unexpected sample grammar, %d rules, start %s", def.G.Size(), def.G.Start())
	}
	if def.Table.HasConflicts() {
		t.Errorf("sample table must be conflict free")
	}
	if c := def.Table.Lookup("C", "d"); c.Kind != ll.Empty {
		t.Errorf("expected M[C,d] = C ::= ε, is %v", c)
	}
	if c := def.Table.Lookup("A", "d"); c.Kind != ll.Production || ll.SymbolString(c.RHS()) != "d S" {
		t.Errorf("expected M[A,d] = A ::= d S, is %v", c)
	}
	if first := def.First["C"]; len(first) != 2 || first[1] != ll.Epsilon {
		t.Errorf("expected FIRST(C) = {c, ε}, is %v", first)
	}
}

func TestByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	for _, name := range Names() {
		def, err := ByName(name)
		if err != nil {
			t.Errorf("grammar %s: %v", name, err)
			continue
		}
		if def.G.Name != name {
			t.Errorf("grammar registered as %s is named %s", name, def.G.Name)
		}
	}
	for _, name := range []string{"G", "AnBn"} { // G is the CLI default
		if _, err := ByName(name); err != nil {
			t.Errorf("expected grammar %s to be known: %v", name, err)
		}
	}
	if _, err := ByName("nope"); err == nil {
		t.Errorf("expected error for unknown grammar")
	}
}

func TestExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	def, err := AnBn()
	if err != nil {
		t.Fatal(err)
	}
	x := def.Export()
	if alts := x.Grammar["S"]; len(alts) != 2 || alts[0] != "a S b" || alts[1] != "ε" {
		t.Errorf("unexpected grammar export %v", alts)
	}
	if x.Table["S"]["b"] != "ε" || x.Table["S"]["a"] != "a S b" {
		t.Errorf("unexpected table export %v", x.Table)
	}
	if _, err := json.Marshal(x); err != nil {
		t.Error(err)
	}
	sample, _ := Sample()
	if cell := sample.Export().Table["S"]["b"]; cell != "erro" {
		t.Errorf("expected error cell to export as 'erro', is %q", cell)
	}
}
