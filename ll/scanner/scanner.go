/*
Package scanner defines an interface for scanners which produce the input
tape for LL(1) recognition.

Two implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', suitable for grammars with Go-like tokens ("id", "+", "(", …),
and (2) an adapter for lexmachine, living in sub-package `lexmach`, which
derives its patterns from the terminals of a grammar.

The lexeme of a token names the terminal it stands for. Turning a token stream
into a sentence of terminals is done by Sentence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	String  = scanner.String
	Comment = scanner.Comment
	Unknown = -16 // input the scanner could not match
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() ll1.Token
	SetErrorHandler(func(error))
}

// Sentence reads all tokens from a tokenizer, until EOF, and returns them
// as a sequence of terminals. The end-marker is not part of the result.
func Sentence(tok Tokenizer) []ll.Symbol {
	var sentence []ll.Symbol
	for token := tok.NextToken(); token.TokType() != EOF; token = tok.NextToken() {
		tracer().Debugf("token %q/%d at %v", token.Lexeme(), token.TokType(), token.Span())
		sentence = append(sentence, ll.Symbol(token.Lexeme()))
	}
	return sentence
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken rune        // last token this scanner has produced
	Error     func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
// Comments are skipped.
func GoTokenizer(sourceID string, input io.Reader) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(&scanError{pos: s.Position.String(), msg: msg})
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() ll1.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	return DefaultToken{
		kind:   ll1.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   ll1.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

type scanError struct {
	pos, msg string
}

func (e *scanError) Error() string {
	return e.pos + ": " + e.msg
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the lexmachine scanner.
type DefaultToken struct {
	kind   ll1.TokType
	lexeme string
	span   ll1.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ ll1.TokType, lexeme string, span ll1.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() ll1.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() ll1.Span {
	return t.span
}
