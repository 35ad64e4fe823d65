package ll

import (
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Symbol is a grammar symbol. Symbols are identified by their name.
type Symbol string

// Reserved symbols.
const (
	EOF     Symbol = "$" // end-marker of the input tape and bottom of the stack
	Epsilon Symbol = "ε" // display symbol for the empty production, never on a stack
)

// SymbolClass classifies a symbol with respect to a grammar.
type SymbolClass int8

// Symbol classes, see Grammar.Classify.
const (
	Terminal SymbolClass = iota
	NonTerminal
	EndMarker
)

func (c SymbolClass) String() string {
	switch c {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case EndMarker:
		return "end-marker"
	}
	return "<unknown symbol class>"
}

func (s Symbol) String() string {
	return string(s)
}

// IsReserved is true for the end-marker and the epsilon symbol.
func (s Symbol) IsReserved() bool {
	return s == EOF || s == Epsilon
}

// SymbolString joins symbols with blanks, e.g. "a S b".
// An empty slice is rendered as ε.
func SymbolString(syms []Symbol) string {
	if len(syms) == 0 {
		return string(Epsilon)
	}
	var b strings.Builder
	for i, sym := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(sym))
	}
	return b.String()
}

// Symbols splits a blank-separated string into symbols. The epsilon
// symbol on its own denotes the empty sequence.
//
//    Symbols("A d")  => [A d]
//    Symbols("ε")    => []
//
func Symbols(s string) []Symbol {
	fields := strings.Fields(s)
	if len(fields) == 1 && Symbol(fields[0]) == Epsilon {
		return []Symbol{}
	}
	syms := make([]Symbol, len(fields))
	for i, f := range fields {
		syms[i] = Symbol(f)
	}
	return syms
}

// terminalComparator orders terminals alphabetically, with the end-marker last.
func terminalComparator(a, b interface{}) int {
	s1, s2 := a.(Symbol), b.(Symbol)
	if s1 == s2 {
		return 0
	} else if s1 == EOF {
		return 1
	} else if s2 == EOF {
		return -1
	}
	return utils.StringComparator(string(s1), string(s2))
}
