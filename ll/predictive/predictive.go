/*
Package predictive provides an LL(1) recognizer, i.e. a table-driven
predictive parser. Clients have to use the tools of package ll to prepare
the grammar and the parse table. The parser interprets the table against
an input sentence and creates a leftmost derivation for it, recorded as a
trace of steps.

Usage

Clients construct a grammar and a table, usually from the output of a table
construction tool:

	b := ll.NewGrammarBuilder("AnBn")
	b.LHS("S").T("a").N("S").T("b").End()   // S ::= a S b
	b.LHS("S").Epsilon()                    // S ::= ε
	g, err := b.Grammar()
	tb := ll.NewTableBuilder(g)
	tb.SetRHS("S", "a", "a S b")
	tb.SetRHS("S", "b", "ε")
	tb.SetRHS("S", "$", "ε")

Then recognize some input:

	p := predictive.NewParser(tb.Table())
	result, trace := p.Recognize(ll.Symbols("a b"))
	if result.Accepted() { … }

or read the input from a scanner.Tokenizer with Parse.

Rejection is not an error: an input not in the language results in a
Rejected verdict, with the reason recorded in the last step of the trace.
There is no error recovery.

The parser places no bound on the number of steps. Tables for left-recursive
grammars make the parser loop forever; it is up to the table construction
to prevent this.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"errors"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/automaton"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}

// Parser is an LL(1)-parser type. Create and initialize one with predictive.NewParser(...)
type Parser struct {
	G     *ll.Grammar
	table *ll.Table
	auto  *automaton.Automaton
}

// NewParser creates an LL(1) parser for a parsing table.
func NewParser(table *ll.Table) *Parser {
	p := &Parser{table: table}
	if table != nil {
		p.G = table.Grammar()
		p.auto = automaton.New(p.G)
		if table.HasConflicts() {
			tracer().Infof("table for grammar %s has conflicts, parser will use first entries", p.G.Name)
		}
	}
	return p
}

// Parse reads the input tape from a tokenizer and recognizes it.
// It returns an error only if the parser has not been initialized.
func (p *Parser) Parse(tok scanner.Tokenizer) (automaton.Result, *automaton.Trace, error) {
	if p.table == nil || p.auto == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return automaton.Result{}, nil, errors.New("LL(1)-parser not initialized")
	}
	result, trace := p.Recognize(scanner.Sentence(tok))
	return result, trace, nil
}

// Recognize runs the automaton on an input sentence of terminals. It returns
// the verdict together with the complete trace of the derivation.
//
// An end-marker within the sentence does not end the input: the automaton
// accepts only if the end-marker on the stack meets the end of the tape.
// For a parser which has not been initialized, Recognize returns a result
// in progress and a nil trace.
func (p *Parser) Recognize(sentence []ll.Symbol) (automaton.Result, *automaton.Trace) {
	if p.table == nil || p.auto == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return automaton.Result{Verdict: automaton.InProgress, Sentence: sentence}, nil
	}
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	input := append(append([]ll.Symbol{}, sentence...), ll.EOF)
	result := automaton.Result{
		Verdict:  automaton.InProgress,
		Sentence: append([]ll.Symbol{}, sentence...),
	}
	stack, trace := p.auto.Start(input)
	pos := 0 // tape head
	for !stack.IsEmpty() {
		X, _ := stack.Peek()
		a := input[pos]
		tracer().Debugf("top = %s, lookahead = %s", X, a)
		if X == a {
			if X == ll.EOF && pos < len(input)-1 { // input continues after an end-marker
				return p.reject(trace, stack, automaton.TerminalMismatch, X, input[pos+1], input[pos:], result), trace
			}
			if X == ll.EOF {
				step := automaton.AppendStep(trace, stack, automaton.Step{
					Action: automaton.Accept,
					Symbol: a,
					Input:  input[pos:],
				})
				result.Verdict, result.Steps = automaton.Accepted, step.Index
				tracer().Infof("input accepted after %d steps", result.Steps)
				return result, trace
			}
			stack.Pop()
			pos++
			automaton.AppendStep(trace, stack, automaton.Step{
				Action: automaton.Match,
				Symbol: a,
				Input:  input[pos:],
			})
		} else if p.auto.Classify(X) == ll.NonTerminal {
			cell := p.table.Lookup(X, a)
			if cell.IsError() {
				return p.reject(trace, stack, automaton.InvalidTableEntry, X, a, input[pos:], result), trace
			}
			rhs := cell.RHS()
			automaton.ApplyProduction(stack, X, rhs)
			automaton.AppendStep(trace, stack, automaton.Step{
				Action:     automaton.Produce,
				Symbol:     X,
				Production: rhs,
				Input:      input[pos:],
			})
		} else {
			return p.reject(trace, stack, automaton.TerminalMismatch, X, a, input[pos:], result), trace
		}
	}
	tracer().Errorf("stack exhausted without accepting the end-marker")
	result.Steps = trace.Len() - 1
	return result, trace
}

func (p *Parser) reject(trace *automaton.Trace, stack *automaton.Stack, reason automaton.Reason,
	X, a ll.Symbol, rest []ll.Symbol, result automaton.Result) automaton.Result {
	//
	step := automaton.AppendStep(trace, stack, automaton.Step{
		Action:    automaton.Reject,
		Reason:    reason,
		Symbol:    X,
		Lookahead: a,
		Input:     rest,
	})
	tracer().Infof("input rejected: %s", step.Description())
	result.Verdict, result.Steps, result.Reason = automaton.Rejected, step.Index, reason
	return result
}
