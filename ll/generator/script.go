package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/ll1/ll"
)

// NoRule marks a choice of an error cell.
const NoRule = -1

// Choice is a single choice applied to a session: either production number
// Rule for NonTerminal, or (with Rule == NoRule) the error cell
// M[NonTerminal,Terminal].
type Choice struct {
	NonTerminal ll.Symbol `json:"nonterminal"`
	Terminal    ll.Symbol `json:"terminal,omitempty"`
	Rule        int       `json:"rule"`
}

// IsError is true for choices of error cells.
func (c Choice) IsError() bool {
	return c.Rule == NoRule
}

// ErrFingerprint is returned when replaying a script against a table it has
// not been recorded for.
var ErrFingerprint = errors.New("script has been recorded for a different table")

// Script is a recorded sequence of choices, bound to the table it has been
// recorded against.
type Script struct {
	Grammar     string   `json:"grammar"`
	Fingerprint string   `json:"fingerprint"`
	Choices     []Choice `json:"choices"`
}

// Record creates a script from the choices applied to a session so far.
func Record(s *Session) Script {
	return Script{
		Grammar:     s.table.Grammar().Name,
		Fingerprint: s.table.Fingerprint(),
		Choices:     s.Choices(),
	}
}

// Replay applies the choices of a script to a fresh session for table.
// Replay stops at the first choice which cannot be applied and returns the
// session as far as it got.
func (sc Script) Replay(table *ll.Table) (*Session, error) {
	if fp := table.Fingerprint(); fp != sc.Fingerprint {
		return nil, fmt.Errorf("grammar %s: %w", table.Grammar().Name, ErrFingerprint)
	}
	session := NewSession(table)
	g := table.Grammar()
	for i, c := range sc.Choices {
		var err error
		if c.IsError() {
			err = session.ChooseError(c.NonTerminal, c.Terminal)
		} else if r := g.Rule(c.Rule); r == nil {
			err = fmt.Errorf("no rule #%d in grammar %s", c.Rule, g.Name)
		} else {
			err = session.ChooseProduction(r)
		}
		if err != nil {
			return session, fmt.Errorf("replaying choice #%d: %w", i, err)
		}
	}
	return session, nil
}

// Write serializes a script as JSON.
func (sc Script) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sc)
}

// ReadScript reads a JSON-serialized script.
func ReadScript(r io.Reader) (Script, error) {
	var sc Script
	if err := json.NewDecoder(r).Decode(&sc); err != nil {
		return Script{}, fmt.Errorf("cannot read script: %w", err)
	}
	return sc, nil
}
