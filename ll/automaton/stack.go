package automaton

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/ll1/ll"
)

// Stack is the derivation stack of the automaton, holding grammar symbols.
type Stack struct {
	syms *arraystack.Stack
}

// NewStack creates a stack for a fresh derivation: the end-marker at the
// bottom, start symbol S on top.
func NewStack(S ll.Symbol) *Stack {
	st := &Stack{syms: arraystack.New()}
	st.syms.Push(ll.EOF)
	st.syms.Push(S)
	return st
}

// Push puts a symbol on top of the stack.
func (st *Stack) Push(sym ll.Symbol) {
	st.syms.Push(sym)
}

// Pop removes the top of stack. If the stack is empty, ok is false.
func (st *Stack) Pop() (sym ll.Symbol, ok bool) {
	v, ok := st.syms.Pop()
	if !ok {
		return "", false
	}
	return v.(ll.Symbol), true
}

// Peek returns the top of stack without removing it.
func (st *Stack) Peek() (sym ll.Symbol, ok bool) {
	v, ok := st.syms.Peek()
	if !ok {
		return "", false
	}
	return v.(ll.Symbol), true
}

// Size returns the number of symbols on the stack.
func (st *Stack) Size() int {
	return st.syms.Size()
}

// IsEmpty is true for an empty stack.
func (st *Stack) IsEmpty() bool {
	return st.syms.Empty()
}

// Clear removes all symbols.
func (st *Stack) Clear() {
	st.syms.Clear()
}

// Snapshot returns a copy of the stack contents, bottom first.
func (st *Stack) Snapshot() []ll.Symbol {
	vals := st.syms.Values() // top first
	snap := make([]ll.Symbol, len(vals))
	for i, v := range vals {
		snap[len(vals)-1-i] = v.(ll.Symbol)
	}
	return snap
}

// String renders the stack bottom first, e.g. "$ d B".
func (st *Stack) String() string {
	return joinSymbols(st.Snapshot())
}

func joinSymbols(syms []ll.Symbol) string {
	var b strings.Builder
	for i, sym := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(sym))
	}
	return b.String()
}
