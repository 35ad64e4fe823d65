package lexmach

import (
	"strings"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// ForGrammar creates a lexmachine adapter recognizing the terminals of g
// (the end-marker excluded) and skipping white space.
func ForGrammar(g *ll.Grammar) (*LMAdapter, error) {
	var literals []string
	tokenIds := make(map[string]int)
	for i, a := range g.Terminals() {
		if a == ll.EOF {
			continue
		}
		literals = append(literals, string(a))
		tokenIds[string(a)] = i + 10
	}
	return NewLMAdapter(SkipWhitespace, literals, tokenIds)
}

// SkipWhitespace is an initializer for NewLMAdapter which ignores blanks,
// tabs and newlines.
func SkipWhitespace(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
}

// NewLMAdapter creates a new lexmachine adapter. It receives an initializer
// for additional patterns, a list of literals ('[', ';', "id", …) and a
// map for translating literals to their token types.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(literalPattern(lit)), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// literalPattern escapes ASCII punctuation of a literal. Letters and digits
// must not be escaped, as lexmachine treats some of them as character classes.
func literalPattern(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if r < 128 && !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Unmatched input is reported to the error handler and returned as a token
// of type scanner.Unknown.
func (lms *LMScanner) NextToken() ll1.Token {
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			end := ui.FailTC
			if end <= ui.StartTC {
				end = ui.StartTC + 1
			}
			if end > len(ui.Text) {
				end = len(ui.Text)
			}
			lms.scanner.TC = end
			return scanner.MakeDefaultToken(scanner.Unknown, string(ui.Text[ui.StartTC:end]),
				ll1.Span{uint64(ui.StartTC), uint64(end)})
		}
		return scanner.MakeDefaultToken(scanner.EOF, "", ll1.Span{0, 0})
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", ll1.Span{0, 0})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		ll1.TokType(token.Type),
		string(token.Lexeme),
		ll1.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
