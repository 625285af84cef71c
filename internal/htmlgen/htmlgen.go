// Package htmlgen writes the host page for a presentation: the highlight
// style, one element per view, and the script that wires the views into a
// TraceyText container in the browser.
package htmlgen

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"traceytext/internal/slide"
	"traceytext/internal/source"
)

// Options controls the generated page.
type Options struct {
	// ScriptSrc is the URL of the TraceyText runtime.
	ScriptSrc string
	// Object is the JavaScript variable holding the container.
	Object string
	// DisplayID is registered as the current-slide display.
	DisplayID string
	// EmitDisplay also writes an element for DisplayID.
	EmitDisplay bool
}

// DefaultOptions returns the options the original page layout used.
func DefaultOptions() Options {
	return Options{
		ScriptSrc: "TraceyText.js",
		Object:    "mainTraceyTextObj",
		DisplayID: "curSlide",
	}
}

// Generate renders the page for p into a string.
func Generate(p *source.Presentation, opts Options) (string, error) {
	var b strings.Builder
	if err := Write(&b, p, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write renders the page for p to w.
func Write(w io.Writer, p *source.Presentation, opts Options) error {
	opts = withDefaults(opts)
	var out []string

	if p.Highlight != "" {
		out = append(out, fmt.Sprintf(`<style type="text/css">
.traceytexthighlight {
	background-color: %s;
}
</style>`, attrEscape(p.Highlight)))
	}

	for _, v := range p.Views {
		out = append(out, fmt.Sprintf(`<div id='%s' style='%s'></div>`, attrEscape(v.ID), attrEscape(v.Style)))
	}
	if opts.EmitDisplay {
		out = append(out, fmt.Sprintf(`Current slide: <span id='%s'></span>`, attrEscape(opts.DisplayID)))
	}

	out = append(out, fmt.Sprintf(`<script type="text/javascript" src="%s"></script>
<script>
var %s = new TraceyText();`, attrEscape(opts.ScriptSrc), opts.Object))

	names := viewNames(p.Views)
	for i, v := range p.Views {
		name := names[i]
		if v.Kind == slide.KindList {
			out = append(out, fmt.Sprintf(`%sViewData = "%s";`, name, EscapeJS(v.Markup)))
			out = append(out, fmt.Sprintf(`%sStepOrder = [%s];`, name, joinInts(v.StepOrder)))
			continue
		}
		data := make([]string, 0, len(v.Entries))
		for _, e := range v.Entries {
			key := defaultKeyJS
			if n, ok := e.Slide(); ok {
				key = strconv.Itoa(n)
			} else if e.Key != source.DefaultKey {
				return fmt.Errorf("view %q: slide key %q is neither a number nor %q", v.ID, e.Key, source.DefaultKey)
			}
			data = append(data, fmt.Sprintf(`%s:"%s"`, key, EscapeJS(e.Text)))
		}
		out = append(out, fmt.Sprintf("%sViewData = {\n%s};", name, strings.Join(data, ", ")))
	}
	out = append(out, "")

	for i, v := range p.Views {
		name := names[i]
		ctor, err := constructor(v.Kind)
		if err != nil {
			return fmt.Errorf("view %q: %w", v.ID, err)
		}
		if v.Kind == slide.KindList {
			out = append(out, fmt.Sprintf(`var viewObj%s = new %s('%s', %sViewData, %sStepOrder);`,
				name, ctor, EscapeJS(v.ID), name, name))
		} else {
			out = append(out, fmt.Sprintf(`var viewObj%s = new %s('%s', %sViewData);`,
				name, ctor, EscapeJS(v.ID), name))
		}
		out = append(out, fmt.Sprintf(`%s.addView(viewObj%s);`, opts.Object, name))
	}

	out = append(out, fmt.Sprintf(`%s.addCurrentSlideDisplay("%s");`, opts.Object, EscapeJS(opts.DisplayID)))
	if p.ControlPanel {
		out = append(out, fmt.Sprintf(`var traceyTextFCP = new TraceyTextFloatingControlPanel('traceyTextFCP', '%s');
traceyTextFCP.generateFloatingControlPanel();`, opts.Object))
	}
	out = append(out, "</script>")

	if _, err := io.WriteString(w, strings.Join(out, "\n")+"\n"); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

func withDefaults(o Options) Options {
	d := DefaultOptions()
	if o.ScriptSrc == "" {
		o.ScriptSrc = d.ScriptSrc
	}
	if o.Object == "" {
		o.Object = d.Object
	}
	if o.DisplayID == "" {
		o.DisplayID = d.DisplayID
	}
	o.Object = jsIdent(o.Object)
	return o
}

// defaultKeyJS is the object key the runtime reads a simple view's
// fallback text from.
const defaultKeyJS = "default"

// viewNames gives every view a distinct JavaScript identifier fragment.
// Ids that sanitise to the same fragment ("a-b", "a_b") get a numeric
// suffix in source order.
func viewNames(views []source.ViewSpec) []string {
	names := make([]string, len(views))
	taken := make(map[string]bool, len(views))
	for i, v := range views {
		base := jsIdent(v.ID)
		name := base
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

// constructor names the runtime's constructor for a view kind.
func constructor(k slide.Kind) (string, error) {
	switch k {
	case slide.KindList:
		return "TraceyTextListView", nil
	case slide.KindMultispan:
		return "TraceyTextMultispanView", nil
	case slide.KindAppend:
		return "TraceyTextAppendView", nil
	case slide.KindAppendScroll:
		return "TraceyTextAppendScrollView", nil
	case slide.KindSimple:
		return "TraceyTextSimpleView", nil
	}
	return "", fmt.Errorf("%w: %q", source.ErrUnsupportedKind, k)
}

var (
	tabPat     = regexp.MustCompile(`\t| {4}`)
	leadPat    = regexp.MustCompile(`^ +`)
	spaceRun   = regexp.MustCompile(` {2,}`)
	notIdent   = regexp.MustCompile(`[^A-Za-z0-9_$]`)
	nbsp       = "&nbsp;"
	jsReplacer = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\r", "",
		"\n", `\n`,
		"</", `<\/`,
	)
)

// EscapeJS prepares text for a double- or single-quoted JavaScript string
// that is later written as HTML. Whitespace layout is kept with &nbsp;:
// a tab or a group of four spaces becomes four of them, and leading spaces
// or runs of two or more spaces become one per space.
func EscapeJS(s string) string {
	s = tabPat.ReplaceAllString(s, strings.Repeat(nbsp, 4))
	s = leadPat.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Repeat(nbsp, len(m))
	})
	s = spaceRun.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Repeat(nbsp, len(m))
	})
	return jsReplacer.Replace(s)
}

var attrReplacer = strings.NewReplacer(`&`, `&amp;`, `'`, `&#39;`, `"`, `&#34;`, `<`, `&lt;`, `>`, `&gt;`)

func attrEscape(s string) string { return attrReplacer.Replace(s) }

// jsIdent turns an element id into a usable JavaScript identifier fragment.
func jsIdent(s string) string {
	s = notIdent.ReplaceAllString(s, "_")
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "_" + s
	}
	return s
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}
