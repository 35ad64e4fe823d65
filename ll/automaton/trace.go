package automaton

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/ll1/ll"
)

// Action is the kind of a derivation step.
type Action int8

// Actions of derivation steps.
const (
	Init Action = iota
	Match
	Produce
	Accept
	Reject
)

func (a Action) String() string {
	switch a {
	case Init:
		return "Init"
	case Match:
		return "Match"
	case Produce:
		return "Produce"
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	}
	return "<unknown action>"
}

// MarshalText makes actions readable in serialized traces.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Reason tells why a derivation has been rejected.
type Reason int8

// Reasons for rejection.
const (
	NoReason          Reason = iota
	InvalidTableEntry        // no production in M[N,a]
	TerminalMismatch         // terminal on top of stack does not match the input
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case InvalidTableEntry:
		return "InvalidTableEntry"
	case TerminalMismatch:
		return "TerminalMismatch"
	}
	return "<unknown reason>"
}

// MarshalText makes reasons readable in serialized traces.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Step is a single step of a derivation. Stack is a snapshot of the stack
// after the step, bottom first. Input is the remaining input tape, and is set
// for recognition only.
//
// Depending on Action, the following fields are set:
//
//    Produce:  Symbol = the expanded non-terminal, Production = its RHS
//    Match:    Symbol = the matched terminal
//    Reject:   Reason = InvalidTableEntry, Symbol = N, Lookahead = a  for cell M[N,a]
//              Reason = TerminalMismatch,  Symbol = expected, Lookahead = found
//
type Step struct {
	Index      int         `json:"step"`
	Stack      []ll.Symbol `json:"stack"`
	Input      []ll.Symbol `json:"input,omitempty"`
	Action     Action      `json:"action"`
	Symbol     ll.Symbol   `json:"symbol,omitempty"`
	Production []ll.Symbol `json:"production,omitempty"`
	Lookahead  ll.Symbol   `json:"lookahead,omitempty"`
	Reason     Reason      `json:"reason,omitempty"`
}

// Description returns a human readable label for the action of a step.
func (s Step) Description() string {
	switch s.Action {
	case Init:
		return "Init"
	case Match:
		return fmt.Sprintf("Match '%s'", s.Symbol)
	case Produce:
		return fmt.Sprintf("Produce: %s ::= %s", s.Symbol, ll.SymbolString(s.Production))
	case Accept:
		return "Match $ and $ - ACCEPT"
	case Reject:
		if s.Reason == TerminalMismatch {
			return fmt.Sprintf("Error: expected '%s' but found '%s'", s.Symbol, s.Lookahead)
		}
		return fmt.Sprintf("Error: M[%s, %s] is invalid", s.Symbol, s.Lookahead)
	}
	return s.Action.String()
}

// clone copies the slices of a step, leaving recorded steps untouched by clients.
func (s Step) clone() Step {
	s.Stack = append([]ll.Symbol{}, s.Stack...)
	if s.Input != nil {
		s.Input = append([]ll.Symbol{}, s.Input...)
	}
	if s.Production != nil {
		s.Production = append([]ll.Symbol{}, s.Production...)
	}
	return s
}

// StackString renders the stack snapshot of a step, bottom first.
func (s Step) StackString() string {
	return joinSymbols(s.Stack)
}

// InputString renders the remaining input of a step.
func (s Step) InputString() string {
	return joinSymbols(s.Input)
}

func (s Step) String() string {
	if s.Input != nil {
		return fmt.Sprintf("%3d | %-20s | %-12s | %s", s.Index, s.StackString(), s.InputString(), s.Description())
	}
	return fmt.Sprintf("%3d | %-20s | %s", s.Index, s.StackString(), s.Description())
}

// --- Trace -----------------------------------------------------------------

// Trace is the append-only sequence of steps of a derivation.
type Trace struct {
	steps *arraylist.List
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{steps: arraylist.New()}
}

// AppendStep appends a step to trace tr, assigning the next sequential index
// and a snapshot of stack st. The step is returned as recorded.
func AppendStep(tr *Trace, st *Stack, step Step) Step {
	step.Index = tr.steps.Size()
	step = step.clone()
	step.Stack = st.Snapshot()
	tr.steps.Add(step)
	tracer().Debugf("%s", step)
	return step
}

// Len returns the number of steps, the Init step included.
func (tr *Trace) Len() int {
	return tr.steps.Size()
}

// Step returns step number i.
func (tr *Trace) Step(i int) (Step, bool) {
	v, ok := tr.steps.Get(i)
	if !ok {
		return Step{}, false
	}
	return v.(Step).clone(), true
}

// Last returns the most recent step.
func (tr *Trace) Last() (Step, bool) {
	return tr.Step(tr.steps.Size() - 1)
}

// Steps returns a copy of all steps.
func (tr *Trace) Steps() []Step {
	steps := make([]Step, 0, tr.steps.Size())
	it := tr.steps.Iterator()
	for it.Next() {
		steps = append(steps, it.Value().(Step).clone())
	}
	return steps
}

// Count returns the number of steps with action a.
func (tr *Trace) Count(a Action) int {
	cnt := 0
	it := tr.steps.Iterator()
	for it.Next() {
		if it.Value().(Step).Action == a {
			cnt++
		}
	}
	return cnt
}
