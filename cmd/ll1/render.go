package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/automaton"
	"github.com/npillmayer/ll1/ll/grammars"
	"github.com/pterm/pterm"
)

// topMarker prefixes the table row of the non-terminal on top of the stack.
const topMarker = "▶ "

var (
	topStyle    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	rejectStyle = pterm.NewStyle(pterm.FgRed)
)

// tableData arranges a parsing table for display: a header row of terminals,
// then a row per non-terminal. Error cells are empty. The row of non-terminal
// top, if any, is highlighted.
func tableData(table *ll.Table, top ll.Symbol) pterm.TableData {
	g := table.Grammar()
	header := []string{""}
	for _, a := range g.Terminals() {
		header = append(header, string(a))
	}
	data := pterm.TableData{header}
	for _, N := range g.NonTerminals() {
		row := []string{string(N)}
		for _, a := range g.Terminals() {
			c := table.Lookup(N, a)
			if c.IsError() {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%s ::= %s", N, ll.SymbolString(c.RHS())))
		}
		if N == top {
			row[0] = topMarker + row[0]
			for i := range row {
				row[i] = topStyle.Sprint(row[i])
			}
		}
		data = append(data, row)
	}
	return data
}

func renderTable(w io.Writer, table *ll.Table, top ll.Symbol) {
	fmt.Fprintln(w, pterm.DefaultSection.Sprint("Parsing table"))
	s, err := pterm.DefaultTable.WithHasHeader().WithData(tableData(table, top)).Srender()
	if err != nil {
		tracer().Errorf("cannot render table: %v", err)
		return
	}
	fmt.Fprintln(w, s)
	if table.HasConflicts() {
		fmt.Fprintln(w, pterm.Warning.Sprint("table has conflicts, grammar is not LL(1)"))
	}
}

// traceData arranges the steps of a derivation for display. The input column
// is shown for recognition only.
func traceData(steps []automaton.Step, withInput bool) pterm.TableData {
	header := []string{"Step", "Stack"}
	if withInput {
		header = append(header, "Input")
	}
	header = append(header, "Action")
	data := pterm.TableData{header}
	for _, step := range steps {
		row := []string{fmt.Sprintf("%d", step.Index), step.StackString()}
		if withInput {
			row = append(row, step.InputString())
		}
		action := step.Description()
		if step.Action == automaton.Reject {
			action = rejectStyle.Sprint(action)
		}
		data = append(data, append(row, action))
	}
	return data
}

func renderTrace(w io.Writer, steps []automaton.Step, withInput bool) {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(traceData(steps, withInput)).Srender()
	if err != nil {
		tracer().Errorf("cannot render trace: %v", err)
		return
	}
	fmt.Fprintln(w, s)
}

// sentenceText renders a sentence blank-separated, with ε for the empty
// sentence.
func sentenceText(sentence []ll.Symbol) string {
	return ll.SymbolString(sentence)
}

// verdictText is the headline of a result, e.g. "ACCEPTED (in 5 steps)".
func verdictText(r automaton.Result) string {
	switch r.Verdict {
	case automaton.Accepted:
		return fmt.Sprintf("ACCEPTED (in %d steps)", r.Steps)
	case automaton.Rejected:
		return fmt.Sprintf("REJECTED (in %d steps)", r.Steps)
	}
	return fmt.Sprintf("in progress (%d steps)", r.Steps)
}

func renderResult(w io.Writer, r automaton.Result) {
	switch r.Verdict {
	case automaton.Accepted:
		fmt.Fprintln(w, pterm.Success.Sprint(verdictText(r)))
	case automaton.Rejected:
		fmt.Fprintln(w, pterm.Error.Sprint(verdictText(r)))
	default:
		fmt.Fprintln(w, pterm.Info.Sprint(verdictText(r)))
	}
	fmt.Fprintln(w, "Sentence: "+sentenceText(r.Sentence))
}

// grammarList arranges the rules of a grammar as a leveled list: one entry
// per non-terminal, its alternatives one level below.
func grammarList(g *ll.Grammar) pterm.LeveledList {
	list := pterm.LeveledList{}
	for _, N := range g.NonTerminals() {
		list = append(list, pterm.LeveledListItem{Level: 0, Text: string(N)})
		for _, r := range g.Alternatives(N) {
			list = append(list, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("%d: %s", r.Serial, r),
			})
		}
	}
	return list
}

// setsText renders FIRST- or FOLLOW-sets in non-terminal order.
func setsText(g *ll.Grammar, sets map[ll.Symbol][]ll.Symbol) []string {
	lines := make([]string, 0, len(sets))
	for _, N := range g.NonTerminals() {
		syms := append([]ll.Symbol{}, sets[N]...)
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
		lines = append(lines, fmt.Sprintf("%s: {%s}", N, ll.SymbolString(syms)))
	}
	return lines
}

func renderGrammar(w io.Writer, def *grammars.Definition) {
	fmt.Fprintln(w, pterm.DefaultSection.Sprint("Grammar "+def.G.Name))
	root := pterm.NewTreeFromLeveledList(grammarList(def.G))
	if s, err := pterm.DefaultTree.WithRoot(root).Srender(); err == nil {
		fmt.Fprintln(w, s)
	} else {
		tracer().Errorf("cannot render grammar: %v", err)
	}
	fmt.Fprintln(w, pterm.DefaultSection.Sprint("FIRST"))
	for _, line := range setsText(def.G, def.First) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, pterm.DefaultSection.Sprint("FOLLOW"))
	for _, line := range setsText(def.G, def.Follow) {
		fmt.Fprintln(w, line)
	}
}
