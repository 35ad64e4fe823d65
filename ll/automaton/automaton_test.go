package automaton

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

//   S ::= a S b  |  ε
func makeGrammar(t *testing.T) *ll.Grammar {
	b := ll.NewGrammarBuilder("AnBn")
	b.LHS("S").T("a").N("S").T("b").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	a := New(makeGrammar(t))
	st, tr := a.Start(nil)
	if st.String() != "$ S" {
		t.Errorf("expected initial stack [$ S], is [%s]", st)
	}
	if top, _ := st.Peek(); top != "S" {
		t.Errorf("expected start symbol on top, is %s", top)
	}
	if tr.Len() != 1 {
		t.Fatalf("expected trace to hold the Init step only, has %d steps", tr.Len())
	}
	if step, _ := tr.Last(); step.Action != Init || step.Index != 0 {
		t.Errorf("expected Init step with index 0, is %v", step)
	}
}

func TestApplyProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g := makeGrammar(t)
	st := NewStack(g.Start())
	for _, r := range []*ll.Rule{g.Rule(0), g.Rule(0), g.Rule(1)} {
		before := st.Size()
		ApplyProduction(st, "S", r.RHS())
		if st.Size()-before != r.Len()-1 {
			t.Errorf("applying %s: stack size changed by %d, expected %d", r, st.Size()-before, r.Len()-1)
		}
		if top, _ := st.Peek(); top == "a" {
			st.Pop() // match 'a'
		}
	}
	if st.String() != "$ b b" {
		t.Errorf("expected stack [$ b b], is [%s]", st)
	}
	st = NewStack("S")
	ApplyProduction(st, "S", g.Rule(0).RHS())
	if top, _ := st.Peek(); top != "a" {
		t.Errorf("expected leftmost symbol of production on top, is %s", top)
	}
	snap := st.Snapshot()
	if ll.SymbolString(snap) != "$ b S a" {
		t.Errorf("expected bottom-first snapshot [$ b S a], is %v", snap)
	}
}

func TestClassify(t *testing.T) {
	a := New(makeGrammar(t))
	if a.Classify("S") != ll.NonTerminal || a.Classify("a") != ll.Terminal || a.Classify(ll.EOF) != ll.EndMarker {
		t.Errorf("classification does not match grammar")
	}
}

func TestTraceAppendOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	st := NewStack("S")
	tr := NewTrace()
	AppendStep(tr, st, Step{Action: Init})
	ApplyProduction(st, "S", []ll.Symbol{"a", "S", "b"})
	AppendStep(tr, st, Step{Action: Produce, Symbol: "S", Production: []ll.Symbol{"a", "S", "b"}})
	st.Pop()
	AppendStep(tr, st, Step{Action: Match, Symbol: "a"})
	steps := tr.Steps()
	for i, s := range steps {
		if s.Index != i {
			t.Errorf("expected step index %d, is %d", i, s.Index)
		}
	}
	steps[1].Stack[0] = "X" // must not touch the trace
	if s, _ := tr.Step(1); s.StackString() != "$ b S a" {
		t.Errorf("trace has been modified through a snapshot: %s", s.StackString())
	}
	if tr.Count(Match) != 1 || tr.Count(Produce) != 1 {
		t.Errorf("unexpected step counts")
	}
	if d := steps[1].Description(); d != "Produce: S ::= a S b" {
		t.Errorf("unexpected description %q", d)
	}
}

func TestStepDescriptions(t *testing.T) {
	cases := []struct {
		step Step
		desc string
	}{
		{Step{Action: Produce, Symbol: "C"}, "Produce: C ::= ε"},
		{Step{Action: Match, Symbol: "d"}, "Match 'd'"},
		{Step{Action: Accept}, "Match $ and $ - ACCEPT"},
		{Step{Action: Reject, Reason: InvalidTableEntry, Symbol: "S", Lookahead: "b"}, "Error: M[S, b] is invalid"},
		{Step{Action: Reject, Reason: TerminalMismatch, Symbol: "d", Lookahead: "a"}, "Error: expected 'd' but found 'a'"},
	}
	for _, c := range cases {
		if d := c.step.Description(); d != c.desc {
			t.Errorf("expected %q, got %q", c.desc, d)
		}
	}
}

func TestResultJSON(t *testing.T) {
	r := Result{Verdict: Rejected, Steps: 2, Sentence: []ll.Symbol{"b"}, Reason: TerminalMismatch}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, `"verdict":"Rejected"`) || !strings.Contains(s, `"reason":"TerminalMismatch"`) {
		t.Errorf("unexpected JSON for result: %s", s)
	}
}
