package ll

import (
	"fmt"
	"html"
	"io"
)

// TableAsHTML exports an LL(1) parsing table in HTML-format.
// Production cells are rendered as "N ::= RHS" and carry the CSS class
// "production", error cells are empty and carry the class "error". Every
// row has an ID "row-N", which enables highlighting of the row for the
// current top of stack.
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil || t.g == nil {
		tracer().Errorf("LL(1) table not yet created, cannot export to HTML")
		return
	}
	T := t.g.Terminals()
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<thead><tr bgcolor=#cccccc><th>N-T</th>")
	for _, a := range T {
		io.WriteString(w, fmt.Sprintf("<th>%s</th>", html.EscapeString(a.String())))
	}
	io.WriteString(w, "</tr></thead>\n<tbody>\n")
	for _, N := range t.g.nonterminals {
		n := html.EscapeString(N.String())
		io.WriteString(w, fmt.Sprintf("<tr id=\"row-%s\"><td><strong>%s</strong></td>", n, n))
		for _, a := range T {
			c1, c2 := t.Values(N, a)
			switch {
			case c1.IsError():
				io.WriteString(w, fmt.Sprintf(`<td class="error" data-nt="%s" data-terminal="%s"></td>`,
					n, html.EscapeString(a.String())))
			case !c2.IsError():
				io.WriteString(w, fmt.Sprintf(`<td class="conflict">%s<br>%s</td>`,
					html.EscapeString(c1.String()), html.EscapeString(c2.String())))
			default:
				io.WriteString(w, fmt.Sprintf(`<td class="production" data-nt="%s" data-prod="%s">%s</td>`,
					n, html.EscapeString(SymbolString(c1.Rule.rhs)), html.EscapeString(c1.String())))
			}
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</tbody></table>\n")
}
