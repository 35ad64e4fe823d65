package generator

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/automaton"
)

// Errors for choices which cannot be applied to a session.
var (
	ErrTerminated = errors.New("derivation has terminated")
	ErrNotOnTop   = errors.New("non-terminal is not on top of stack")
)

// Session is a single generation-mode derivation. It owns a stack, a trace and
// the sentence generated so far. Sessions are not safe for concurrent use.
type Session struct {
	table    *ll.Table
	auto     *automaton.Automaton
	stack    *automaton.Stack
	trace    *automaton.Trace
	sentence []ll.Symbol
	result   automaton.Result
	choices  []Choice
}

// NewSession starts a derivation for a parsing table. The stack is [$ S] and
// the trace holds the Init step.
func NewSession(table *ll.Table) *Session {
	s := &Session{
		table:    table,
		auto:     automaton.New(table.Grammar()),
		sentence: []ll.Symbol{},
	}
	s.stack, s.trace = s.auto.Start(nil)
	s.result = automaton.Result{Verdict: automaton.InProgress, Sentence: []ll.Symbol{}}
	return s
}

// Reset returns a fresh session for the same table. The receiver is left
// untouched, but clients are expected to drop it.
func (s *Session) Reset() *Session {
	return NewSession(s.table)
}

// Table returns the table of this session.
func (s *Session) Table() *ll.Table {
	return s.table
}

// Terminated is true if the derivation has been accepted or rejected.
func (s *Session) Terminated() bool {
	return s.result.Verdict != automaton.InProgress
}

// Top returns the symbol on top of the stack. For a session in progress this
// is the non-terminal the next choice has to be made for.
func (s *Session) Top() (ll.Symbol, bool) {
	return s.stack.Peek()
}

// Stack returns a snapshot of the stack, bottom first.
func (s *Session) Stack() []ll.Symbol {
	return s.stack.Snapshot()
}

// Steps returns a snapshot of the trace.
func (s *Session) Steps() []automaton.Step {
	return s.trace.Steps()
}

// Sentence returns the terminals generated so far.
func (s *Session) Sentence() []ll.Symbol {
	return append([]ll.Symbol{}, s.sentence...)
}

// Result returns the current verdict, step count and sentence.
func (s *Session) Result() automaton.Result {
	r := s.result
	r.Steps = s.trace.Len() - 1
	r.Sentence = s.Sentence()
	return r
}

// Choices returns the choices applied to this session so far.
func (s *Session) Choices() []Choice {
	return append([]Choice{}, s.choices...)
}

// ChooseProduction applies rule r to the non-terminal on top of the stack and
// then consumes terminals from the top of the stack, appending them to the
// sentence, until a non-terminal is exposed. Consuming the end-marker accepts
// the derivation.
//
// The rule is not checked against the table. It must, however, have the
// top of stack as its LHS, otherwise ErrNotOnTop is returned.
func (s *Session) ChooseProduction(r *ll.Rule) error {
	if s.Terminated() || s.stack.IsEmpty() {
		return ErrTerminated
	}
	if r == nil {
		return errors.New("no production given")
	}
	N, _ := s.stack.Peek()
	if N != r.LHS {
		return fmt.Errorf("cannot apply %s: %w (top is %s)", r, ErrNotOnTop, N)
	}
	rhs := r.RHS()
	automaton.ApplyProduction(s.stack, N, rhs)
	automaton.AppendStep(s.trace, s.stack, automaton.Step{
		Action:     automaton.Produce,
		Symbol:     N,
		Production: rhs,
	})
	s.choices = append(s.choices, Choice{NonTerminal: N, Rule: r.Serial})
	s.consume()
	return nil
}

// consume pops terminals from the top of the stack until a non-terminal is
// exposed or the stack is empty.
func (s *Session) consume() {
	for !s.stack.IsEmpty() {
		top, _ := s.stack.Peek()
		if s.auto.Classify(top) == ll.NonTerminal {
			return
		}
		s.stack.Pop()
		if top == ll.EOF {
			automaton.AppendStep(s.trace, s.stack, automaton.Step{
				Action: automaton.Accept,
				Symbol: top,
			})
			s.stack.Clear()
			s.result.Verdict = automaton.Accepted
			tracer().Infof("generated sentence accepted: %s", ll.SymbolString(s.sentence))
			return
		}
		s.sentence = append(s.sentence, top)
		automaton.AppendStep(s.trace, s.stack, automaton.Step{
			Action: automaton.Match,
			Symbol: top,
		})
	}
}

// ChooseError rejects the derivation, stating that cell M[N,a] is an error
// cell. The cell is not checked against the table.
func (s *Session) ChooseError(N ll.Symbol, a ll.Symbol) error {
	if s.Terminated() || s.stack.IsEmpty() {
		return ErrTerminated
	}
	automaton.AppendStep(s.trace, s.stack, automaton.Step{
		Action:    automaton.Reject,
		Reason:    automaton.InvalidTableEntry,
		Symbol:    N,
		Lookahead: a,
	})
	s.stack.Clear()
	s.result.Verdict = automaton.Rejected
	s.result.Reason = automaton.InvalidTableEntry
	s.choices = append(s.choices, Choice{NonTerminal: N, Terminal: a, Rule: NoRule})
	tracer().Infof("derivation rejected: M[%s, %s] is invalid", N, a)
	return nil
}

// Select applies the table cell M[N,a], as if a user had picked it from a
// rendered table: a production cell is applied with ChooseProduction, an error
// cell rejects the derivation. N has to be the top of stack.
func (s *Session) Select(N ll.Symbol, a ll.Symbol) error {
	if s.Terminated() || s.stack.IsEmpty() {
		return ErrTerminated
	}
	if top, _ := s.stack.Peek(); top != N {
		return fmt.Errorf("cannot select M[%s,%s]: %w (top is %s)", N, a, ErrNotOnTop, top)
	}
	cell := s.table.Lookup(N, a)
	if cell.IsError() {
		return s.ChooseError(N, a)
	}
	return s.ChooseProduction(cell.Rule)
}
