package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"id",
	"id + id",
	"( id * id ) // comment",
	"",
}

var sentences = []string{
	"id",
	"id + id",
	"( id * id )",
	"ε",
}

func TestGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		scan := GoTokenizer("test", strings.NewReader(input))
		sentence := Sentence(scan)
		if s := ll.SymbolString(sentence); s != sentences[i] {
			t.Errorf("expected input #%d to scan as [%s], got [%s]", i, sentences[i], s)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.scanner")
	defer teardown()
	//
	scan := GoTokenizer("test", strings.NewReader("id + x"))
	token := scan.NextToken()
	if token.TokType() != Ident || token.Span().From() != 0 || token.Span().To() != 2 {
		t.Errorf("unexpected first token %q/%d at %v", token.Lexeme(), token.TokType(), token.Span())
	}
	token = scan.NextToken()
	if token.Lexeme() != "+" || token.Span().From() != 3 {
		t.Errorf("unexpected second token %q at %v", token.Lexeme(), token.Span())
	}
}
