package automaton

import (
	"fmt"

	"github.com/npillmayer/ll1/ll"
)

// Verdict is the state of a derivation.
type Verdict int8

// Verdicts. A derivation is InProgress until it has been accepted or rejected.
const (
	InProgress Verdict = iota
	Accepted
	Rejected
)

func (v Verdict) String() string {
	switch v {
	case InProgress:
		return "InProgress"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	}
	return "<unknown verdict>"
}

// MarshalText makes verdicts readable in serialized results.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Result is the outcome of a derivation: a verdict, the number of steps
// taken (the Init step not counted), and the sentence recognized or generated.
// For rejected derivations, Reason tells why.
type Result struct {
	Verdict  Verdict     `json:"verdict"`
	Steps    int         `json:"steps"`
	Sentence []ll.Symbol `json:"sentence"`
	Reason   Reason      `json:"reason,omitempty"`
}

// Accepted is a predicate.
func (r Result) Accepted() bool {
	return r.Verdict == Accepted
}

// Rejected is a predicate.
func (r Result) Rejected() bool {
	return r.Verdict == Rejected
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%d steps) [%s]", r.Verdict, r.Steps, ll.SymbolString(r.Sentence))
}

// --- Automaton core --------------------------------------------------------

// Automaton bundles the symbol classification of a grammar with the
// primitive stack operations. It holds no derivation state and may be shared
// between derivations.
type Automaton struct {
	G *ll.Grammar
}

// New creates an automaton for grammar g.
func New(g *ll.Grammar) *Automaton {
	return &Automaton{G: g}
}

// Classify decides if a symbol is a terminal, a non-terminal or the end-marker.
func (a *Automaton) Classify(sym ll.Symbol) ll.SymbolClass {
	return a.G.Classify(sym)
}

// Start creates the stack and the trace for a fresh derivation. The stack is
// [$ S], the trace holds the Init step. input is recorded with the Init step
// and should be nil for generation.
func (a *Automaton) Start(input []ll.Symbol) (*Stack, *Trace) {
	st := NewStack(a.G.Start())
	tr := NewTrace()
	AppendStep(tr, st, Step{Action: Init, Input: input})
	return st, tr
}

// ApplyProduction replaces non-terminal N on top of the stack by the symbols
// of a production. The symbols are pushed in reverse order, so the leftmost
// symbol of the production becomes the new top of stack. For an empty
// production nothing is pushed.
//
// N is expected to be on top of the stack. ApplyProduction does not fail if it
// isn't; it pops whatever is on top.
func ApplyProduction(st *Stack, N ll.Symbol, production []ll.Symbol) {
	if top, ok := st.Pop(); !ok || top != N {
		tracer().Errorf("expected %s on top of stack, got %q", N, top)
	}
	for i := len(production) - 1; i >= 0; i-- {
		st.Push(production[i])
	}
}
