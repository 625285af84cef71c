package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HighlightClass is the class a list view adds to its current <li>.
const HighlightClass = "traceytexthighlight"

const (
	bullet            = "• "
	highlightedBullet = "▸ "
	maxMarkupDepth    = 64
)

var bodyContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

// RenderMarkup turns a view's HTML into terminal text. List items become
// bullet lines, block elements and <br> break lines, and anything inside an
// element carrying HighlightClass is drawn with highlight. Entities are
// decoded and runs of whitespace collapse as a browser would, except that
// &nbsp; survives so indented code keeps its shape.
func RenderMarkup(src string, highlight lipgloss.Style) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	nodes, err := html.ParseFragment(strings.NewReader(src), bodyContext)
	if err != nil {
		// The tokenizer accepts anything; this only fails on reader errors.
		return src
	}
	w := &markupWriter{highlight: highlight}
	for _, n := range nodes {
		w.walk(n, false, false, 0)
	}
	return w.String()
}

type markupWriter struct {
	highlight lipgloss.Style
	lines     []string
	cur       strings.Builder
	pending   bool // a collapsed space is owed before the next word
	fresh     bool // only a bullet is on the line so far
}

func (w *markupWriter) walk(n *html.Node, lit, pre bool, depth int) {
	if depth > maxMarkupDepth {
		return
	}
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, lit, pre)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c, lit, pre, depth+1)
		}
		return
	}

	lit = lit || hasClass(n, HighlightClass)
	switch n.DataAtom {
	case atom.Script, atom.Style:
		return
	case atom.Br:
		w.newline()
		return
	case atom.Li:
		w.block()
		if hasClass(n, HighlightClass) {
			w.write(highlightedBullet, true)
		} else {
			w.write(bullet, false)
		}
		w.fresh = true
	case atom.Pre:
		w.block()
		pre = true
	case atom.P, atom.Div, atom.Ul, atom.Ol, atom.Tr, atom.Table,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.block()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, lit, pre, depth+1)
	}

	switch n.DataAtom {
	case atom.Li, atom.Pre, atom.P, atom.Div, atom.Ul, atom.Ol, atom.Tr, atom.Table,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.block()
	}
}

func (w *markupWriter) text(s string, lit, pre bool) {
	if pre {
		for i, line := range strings.Split(s, "\n") {
			if i > 0 {
				w.newline()
			}
			w.write(nbspToSpace(line), lit)
		}
		return
	}
	if s != "" && isSpace(s[0]) {
		w.pending = true
	}
	words := strings.FieldsFunc(s, func(r rune) bool { return r < 0x80 && isSpace(byte(r)) })
	for i, word := range words {
		if i > 0 {
			w.pending = true
		}
		w.word(nbspToSpace(word), lit)
	}
	if len(words) > 0 && isSpace(s[len(s)-1]) {
		w.pending = true
	}
}

func (w *markupWriter) word(s string, lit bool) {
	if w.pending && w.cur.Len() > 0 && !w.fresh {
		w.cur.WriteByte(' ')
	}
	w.pending = false
	w.write(s, lit)
}

func (w *markupWriter) write(s string, lit bool) {
	if s == "" {
		return
	}
	if lit {
		s = w.highlight.Render(s)
	}
	w.cur.WriteString(s)
	w.fresh = false
}

// block ends the current line unless it is empty.
func (w *markupWriter) block() {
	if w.cur.Len() > 0 {
		w.newline()
	}
	w.pending = false
}

func (w *markupWriter) newline() {
	w.lines = append(w.lines, w.cur.String())
	w.cur.Reset()
	w.pending = false
	w.fresh = false
}

func (w *markupWriter) String() string {
	if w.cur.Len() > 0 {
		w.newline()
	}
	lines := w.lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if strings.EqualFold(c, class) {
				return true
			}
		}
	}
	return false
}

// isSpace matches the ASCII whitespace HTML collapses. U+00A0 is not in it.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func nbspToSpace(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}
