package predictive

import (
	"testing"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/automaton"
	"github.com/npillmayer/ll1/ll/grammars"
	"github.com/npillmayer/ll1/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeParser(t *testing.T, def func() (*grammars.Definition, error)) *Parser {
	level := tracing.Select("ll1.ll").GetTraceLevel()
	tracing.Select("ll1.ll").SetTraceLevel(tracing.LevelError)
	d, err := def()
	if err != nil {
		t.Fatal(err)
	}
	tracing.Select("ll1.ll").SetTraceLevel(level)
	return NewParser(d.Table)
}

func TestAnBnTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	p := makeParser(t, grammars.AnBn)
	result, trace := p.Recognize(ll.Symbols("a b"))
	if !result.Accepted() || result.Steps != 5 {
		t.Fatalf("expected 'a b' to be accepted in 5 steps, is %v", result)
	}
	expected := []struct {
		action automaton.Action
		stack  string
		input  string
	}{
		{automaton.Init, "$ S", "a b $"},
		{automaton.Produce, "$ b S a", "a b $"},
		{automaton.Match, "$ b S", "b $"},
		{automaton.Produce, "$ b", "b $"},
		{automaton.Match, "$", "$"},
		{automaton.Accept, "$", "$"},
	}
	steps := trace.Steps()
	if len(steps) != len(expected) {
		t.Fatalf("expected %d steps, have %d", len(expected), len(steps))
	}
	for i, x := range expected {
		s := steps[i]
		t.Logf("%s", s)
		if s.Action != x.action || s.StackString() != x.stack || s.InputString() != x.input {
			t.Errorf("step %d: expected %s [%s] [%s], is %s [%s] [%s]", i,
				x.action, x.stack, x.input, s.Action, s.StackString(), s.InputString())
		}
	}
	if d := steps[3].Description(); d != "Produce: S ::= ε" {
		t.Errorf("expected epsilon production to be rendered as ε, is %q", d)
	}
	if ll.SymbolString(result.Sentence) != "a b" {
		t.Errorf("expected result to carry the sentence, is %v", result.Sentence)
	}
}

var acceptedSentences = []string{
	"a b d",
	"a d a b d",
	"d a b d d",
	"c a b d",
	"a b c a b d",
}

func TestSampleAccept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	p := makeParser(t, grammars.Sample)
	for n, input := range acceptedSentences {
		result, trace := p.Recognize(ll.Symbols(input))
		if !result.Accepted() {
			t.Errorf("valid input string #%d not accepted: '%s'", n+1, input)
			continue
		}
		last, _ := trace.Last()
		if last.Action != automaton.Accept || last.StackString() != "$" || last.InputString() != "$" {
			t.Errorf("input #%d: expected final Accept step with stack [$], is %s", n+1, last)
		}
		if result.Steps != trace.Len()-1 {
			t.Errorf("input #%d: step count %d does not match trace length %d", n+1, result.Steps, trace.Len())
		}
	}
	result, _ := p.Recognize(ll.Symbols("a b d"))
	if result.Steps != 8 {
		t.Errorf("expected 'a b d' to take 8 steps, took %d", result.Steps)
	}
}

var rejectedSentences = []struct {
	input     string
	reason    automaton.Reason
	steps     int
	symbol    ll.Symbol
	lookahead ll.Symbol
}{
	{"b", automaton.InvalidTableEntry, 1, "S", "b"},
	{"a b", automaton.InvalidTableEntry, 6, "C", ll.EOF},
	{"a b d d", automaton.TerminalMismatch, 8, ll.EOF, "d"},
	{"d a b d a", automaton.TerminalMismatch, 11, "d", "a"},
	{"a x d", automaton.InvalidTableEntry, 4, "B", "x"},
	{"", automaton.InvalidTableEntry, 1, "S", ll.EOF},
	{"a b d $ d", automaton.TerminalMismatch, 8, ll.EOF, "d"},
}

func TestSampleReject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	p := makeParser(t, grammars.Sample)
	for n, x := range rejectedSentences {
		result, trace := p.Recognize(ll.Symbols(x.input))
		if !result.Rejected() {
			t.Errorf("invalid input string #%d not rejected: '%s'", n+1, x.input)
			continue
		}
		last, _ := trace.Last()
		t.Logf("'%s' => %s", x.input, last.Description())
		if last.Action != automaton.Reject || last.Reason != x.reason || result.Reason != x.reason {
			t.Errorf("input #%d: expected rejection because of %s, is %s", n+1, x.reason, last.Reason)
		}
		if result.Steps != x.steps || last.Index != x.steps {
			t.Errorf("input #%d: expected rejection at step %d, is %d", n+1, x.steps, result.Steps)
		}
		if last.Symbol != x.symbol || last.Lookahead != x.lookahead {
			t.Errorf("input #%d: expected (%s,%s) to be recorded, is (%s,%s)", n+1,
				x.symbol, x.lookahead, last.Symbol, last.Lookahead)
		}
		if trace.Count(automaton.Accept) != 0 {
			t.Errorf("input #%d: rejected trace contains an Accept step", n+1)
		}
	}
}

func TestAnBnReject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	p := makeParser(t, grammars.AnBn)
	// M[S,b] = ε is a valid cell, the error shows up as a mismatch with $
	result, trace := p.Recognize(ll.Symbols("b a"))
	last, _ := trace.Last()
	if !result.Rejected() || last.Reason != automaton.TerminalMismatch || last.Symbol != ll.EOF {
		t.Errorf("expected 'b a' to be rejected with a mismatch at the end-marker, is %s", last.Description())
	}
	result, trace = p.Recognize(ll.Symbols("a a b"))
	last, _ = trace.Last()
	if !result.Rejected() || last.Symbol != "b" || last.Lookahead != ll.EOF {
		t.Errorf("expected 'a a b' to be rejected expecting b, is %s", last.Description())
	}
	// an end-marker typed into the sentence must not end the input
	result, trace = p.Recognize(ll.Symbols("a b $ a a a"))
	last, _ = trace.Last()
	if !result.Rejected() || result.Steps != 5 || last.Symbol != ll.EOF || last.Lookahead != "a" {
		t.Errorf("expected 'a b $ a a a' to be rejected at step 5, is %v: %s", result, last.Description())
	}
	if last.InputString() != "$ a a a $" {
		t.Errorf("expected unread input to be recorded, is [%s]", last.InputString())
	}
}

func TestParseFromScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	p := makeParser(t, grammars.Sample)
	LM, err := lexmach.ForGrammar(p.G)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("abcabd")
	if err != nil {
		t.Fatal(err)
	}
	result, _, err := p.Parse(sc)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Accepted() || ll.SymbolString(result.Sentence) != "a b c a b d" {
		t.Errorf("expected 'abcabd' to be accepted, is %v", result)
	}
	sc, err = LM.Scanner("abd$d")
	if err != nil {
		t.Fatal(err)
	}
	sc.SetErrorHandler(func(error) {})
	result, _, _ = p.Parse(sc)
	if !result.Rejected() || result.Reason != automaton.TerminalMismatch {
		t.Errorf("expected 'abd$d' to be rejected, is %v", result)
	}
	if _, _, err := NewParser(nil).Parse(sc); err == nil {
		t.Errorf("expected uninitialized parser to return an error")
	}
}

func TestRecognizeUninitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	result, trace := NewParser(nil).Recognize(ll.Symbols("a b"))
	if trace != nil || result.Verdict != automaton.InProgress {
		t.Errorf("expected uninitialized parser to leave the derivation unstarted, is %v", result)
	}
}
