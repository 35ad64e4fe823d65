package ll

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar: LHS ::= RHS. An empty RHS denotes
// an epsilon-production.
type Rule struct {
	Serial int    // order number of this rule within a grammar
	LHS    Symbol // left hand side, a non-terminal
	rhs    []Symbol
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len returns the number of symbols of the RHS.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for epsilon-productions.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s ::= %s", r.LHS, SymbolString(r.rhs))
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar. Grammars are created with a GrammarBuilder
// and are read-only afterwards.
type Grammar struct {
	Name         string
	rules        []*Rule
	nonterminals []Symbol       // in order of declaration, start symbol first
	ntIndex      map[Symbol]int // position within nonterminals
	terminals    *treeset.Set   // sorted, end-marker last
	tIndex       map[Symbol]int // position within terminals
}

// Start returns the start symbol of a grammar.
func (g *Grammar) Start() Symbol {
	return g.nonterminals[0]
}

// Rule returns rule number i.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rules returns all the rules of a grammar, in order of declaration.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// Alternatives returns the rules for non-terminal N, in order of declaration.
func (g *Grammar) Alternatives(N Symbol) []*Rule {
	var alts []*Rule
	for _, r := range g.rules {
		if r.LHS == N {
			alts = append(alts, r)
		}
	}
	return alts
}

// FindRule returns the rule N ::= rhs, if present.
func (g *Grammar) FindRule(N Symbol, rhs []Symbol) (*Rule, bool) {
	for _, r := range g.Alternatives(N) {
		if equalSymbols(r.rhs, rhs) {
			return r, true
		}
	}
	return nil, false
}

// NonTerminals returns the non-terminals of a grammar, start symbol first,
// then in order of first appearance as a LHS.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// Terminals returns the terminals of a grammar, including the end-marker.
// Terminals are sorted alphabetically, with the end-marker last.
func (g *Grammar) Terminals() []Symbol {
	vals := g.terminals.Values()
	T := make([]Symbol, len(vals))
	for i, v := range vals {
		T[i] = v.(Symbol)
	}
	return T
}

// Classify returns the class of a symbol with respect to this grammar.
// Every symbol which is not a declared non-terminal and not the end-marker is
// considered a terminal, even if it does not occur in any rule.
func (g *Grammar) Classify(sym Symbol) SymbolClass {
	if sym == EOF {
		return EndMarker
	}
	if _, ok := g.ntIndex[sym]; ok {
		return NonTerminal
	}
	return Terminal
}

// IsTerminal is true if sym is a terminal of the grammar's alphabet
// (the end-marker included).
func (g *Grammar) IsTerminal(sym Symbol) bool {
	_, ok := g.tIndex[sym]
	return ok
}

// Dump is a debugging helper, tracing all the rules with level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

func equalSymbols(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder and add rules with LHS(...):
//
//     b := ll.NewGrammarBuilder("G")
//     b.LHS("S").N("A").T("d").End()   // S ::= A d
//     b.LHS("C").Epsilon()             // C ::= ε
//     g, err := b.Grammar()
//
type GrammarBuilder struct {
	name  string
	rules []*Rule
	kinds map[Symbol]SymbolClass // how symbols have been used on a RHS
	err   error
}

// RuleBuilder collects the RHS of a single rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  name,
		kinds: make(map[Symbol]SymbolClass),
	}
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	sym := Symbol(name)
	if sym.IsReserved() || name == "" {
		gb.fail(fmt.Errorf("symbol %q cannot be used as a non-terminal", name))
	}
	return &RuleBuilder{gb: gb, lhs: sym}
}

// N appends a non-terminal to the RHS of a rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.append(name, NonTerminal)
}

// T appends a terminal to the RHS of a rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	return rb.append(name, Terminal)
}

// End ends a rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	r := &Rule{
		Serial: len(rb.gb.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	rb.gb.rules = append(rb.gb.rules, r)
	tracer().Debugf("grammar %s: new rule %s", rb.gb.name, r)
	return r
}

// Epsilon ends a rule as an epsilon-production and adds it to the grammar.
// It is an error to call Epsilon after symbols have been appended.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.gb.fail(fmt.Errorf("rule for %s: epsilon after RHS symbols", rb.lhs))
	}
	rb.rhs = nil
	return rb.End()
}

func (rb *RuleBuilder) append(name string, class SymbolClass) *RuleBuilder {
	sym := Symbol(name)
	if sym.IsReserved() || name == "" {
		rb.gb.fail(fmt.Errorf("rule for %s: reserved or empty symbol %q on RHS", rb.lhs, name))
		return rb
	}
	if k, ok := rb.gb.kinds[sym]; ok && k != class {
		rb.gb.fail(fmt.Errorf("symbol %q used both as %s and %s", name, k, class))
	}
	rb.gb.kinds[sym] = class
	rb.rhs = append(rb.rhs, sym)
	return rb
}

func (gb *GrammarBuilder) fail(err error) {
	tracer().Errorf("%v", err)
	if gb.err == nil {
		gb.err = err
	}
}

// Grammar returns the grammar built so far, or an error if the rules do not
// form a consistent grammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.rules) == 0 {
		return nil, errors.New("grammar has no rules")
	}
	g := &Grammar{
		Name:      gb.name,
		rules:     gb.rules,
		ntIndex:   make(map[Symbol]int),
		terminals: treeset.NewWith(terminalComparator),
		tIndex:    make(map[Symbol]int),
	}
	for _, r := range gb.rules {
		if _, ok := g.ntIndex[r.LHS]; !ok {
			g.ntIndex[r.LHS] = len(g.nonterminals)
			g.nonterminals = append(g.nonterminals, r.LHS)
		}
	}
	for sym, class := range gb.kinds {
		_, isLHS := g.ntIndex[sym]
		switch {
		case class == NonTerminal && !isLHS:
			return nil, fmt.Errorf("non-terminal %s has no rule", sym)
		case class == Terminal && isLHS:
			return nil, fmt.Errorf("terminal %s is used as a LHS", sym)
		case class == Terminal:
			g.terminals.Add(sym)
		}
	}
	g.terminals.Add(EOF)
	for i, t := range g.Terminals() {
		g.tIndex[t] = i
	}
	return g, nil
}
