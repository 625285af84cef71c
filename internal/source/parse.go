package source

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"traceytext/internal/slide"
)

var (
	headerPat = regexp.MustCompile(`^view\.(list|multispan|simple|append|appendscroll)\.(.*?)\.(.*)`)
	entryPat  = regexp.MustCompile(`^(\d+|default)\.(.*)`)
)

// ParseError reports a malformed line in a raw source file.
type ParseError struct {
	Line int // 1-based
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

type parseState int

const (
	stateGeneral parseState = iota
	stateHeader
	stateStepOrder
	stateData
)

// Parse reads the raw line-based format:
//
//	controlpanel
//	traceytexthighlight yellow
//	view.list.code.width:300px
//	1,2,3
//	<ul><li>first</li>...</ul>
//	view.multispan.notes.
//	1.Text for slide one
//	3.Text for slides three onwards
//	continues on the next line
//
// Lines before the first view header that are neither settings nor headers
// are ignored.
func Parse(src string) (*Presentation, error) {
	lines := strings.SplitAfter(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	p := &Presentation{}
	var cur *ViewSpec
	var markup strings.Builder
	flush := func() {
		if cur == nil {
			return
		}
		if cur.Kind == slide.KindList {
			cur.Markup = markup.String()
		}
		p.Views = append(p.Views, *cur)
		cur = nil
		markup.Reset()
	}

	state := stateGeneral
	for i := 0; i < len(lines); {
		line := lines[i]
		bare := strings.TrimRight(line, "\r\n")

		switch state {
		case stateGeneral:
			if headerPat.MatchString(bare) {
				state = stateHeader
				continue
			}
			lower := strings.ToLower(bare)
			switch {
			case strings.HasPrefix(lower, "controlpanel"):
				p.ControlPanel = true
			case strings.HasPrefix(lower, "traceytexthighlight"):
				p.Highlight = strings.TrimSpace(bare[len("traceytexthighlight"):])
			}
			i++

		case stateHeader:
			m := headerPat.FindStringSubmatch(strings.TrimSpace(bare))
			if m == nil {
				return nil, &ParseError{Line: i + 1, Text: bare, Msg: "expected view header view.<kind>.<id>.<style>"}
			}
			kind, _ := slide.ParseKind(m[1])
			cur = &ViewSpec{Kind: kind, ID: m[2], Style: m[3]}
			if kind == slide.KindList {
				state = stateStepOrder
			} else {
				state = stateData
			}
			i++

		case stateStepOrder:
			steps, err := parseStepOrder(bare)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: bare, Msg: err.Error()}
			}
			cur.StepOrder = steps
			state = stateData
			i++

		case stateData:
			if headerPat.MatchString(bare) {
				flush()
				state = stateHeader
				continue
			}
			if cur.Kind == slide.KindList {
				// Markup is kept verbatim apart from CRLF line endings.
				markup.WriteString(bare)
				if strings.HasSuffix(line, "\n") {
					markup.WriteByte('\n')
				}
			} else if m := entryPat.FindStringSubmatch(bare); m != nil {
				cur.Entries = append(cur.Entries, Entry{Key: m[1], Text: m[2]})
			} else if n := len(cur.Entries); n > 0 {
				cur.Entries[n-1].Text += "\n" + bare
			}
			// Text before the first entry is dropped.
			i++
		}
	}

	if state == stateStepOrder {
		return nil, &ParseError{Line: len(lines), Text: cur.ID, Msg: "list view is missing its step order"}
	}
	flush()
	return p, nil
}

// parseStepOrder reads a comma separated list of <li> numbers. Surrounding
// brackets are tolerated so "[1, 2, 3]" and "1,2,3" are equivalent.
func parseStepOrder(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	var steps []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad step %q in step order", f)
		}
		steps = append(steps, n)
	}
	return steps, nil
}
