// Package source reads TraceyText presentations: the line-based raw format
// and its YAML and JSON equivalents. A parsed Presentation builds slide views.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"traceytext/internal/slide"
)

// DefaultKey is the entry key a simple view falls back to.
const DefaultKey = "default"

// Entry is one keyed datum of a non-list view: a slide number or "default".
type Entry struct {
	Key  string
	Text string
}

// Slide returns the entry's slide number. ok is false for the default entry
// and for any key that is not plain decimal digits ("+1" and "-2" included).
func (e Entry) Slide() (int, bool) {
	if e.Key == "" || strings.TrimLeft(e.Key, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(e.Key)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ViewSpec describes one view as written in the source.
type ViewSpec struct {
	Kind  slide.Kind
	ID    string
	Style string

	// List views only.
	StepOrder []int
	Markup    string

	// Other views, in source order.
	Entries []Entry
}

// Presentation is a parsed source file.
type Presentation struct {
	// Highlight is the CSS colour for highlighted list items ("" = none).
	Highlight    string
	ControlPanel bool
	Views        []ViewSpec
}

// ErrUnsupportedKind is returned by Build for a kind it cannot construct.
var ErrUnsupportedKind = errors.New("unsupported view kind")

// Build constructs the slide view described by s.
func (s ViewSpec) Build() (slide.View, error) {
	if s.Kind == slide.KindList {
		return slide.NewListView(s.ID, s.Markup, s.StepOrder), nil
	}
	slides, def, hasDef := s.entryMap()
	switch s.Kind {
	case slide.KindMultispan:
		return slide.NewMultispanView(s.ID, slides), nil
	case slide.KindAppend:
		return slide.NewAppendView(s.ID, slides), nil
	case slide.KindAppendScroll:
		return slide.NewAppendScrollView(s.ID, slides), nil
	case slide.KindSimple:
		if hasDef {
			return slide.NewSimpleViewWithDefault(s.ID, slides, def), nil
		}
		return slide.NewSimpleView(s.ID, slides), nil
	}
	return nil, fmt.Errorf("view %q: %w: %q", s.ID, ErrUnsupportedKind, s.Kind)
}

// entryMap folds entries into a slide map. Later duplicates win.
func (s ViewSpec) entryMap() (slides map[int]string, def string, hasDef bool) {
	slides = make(map[int]string, len(s.Entries))
	for _, e := range s.Entries {
		if n, ok := e.Slide(); ok {
			slides[n] = e.Text
			continue
		}
		if e.Key == DefaultKey {
			def, hasDef = e.Text, true
		}
	}
	return slides, def, hasDef
}

// ElementIDs returns the element id of every view, in order.
func (p *Presentation) ElementIDs() []string {
	ids := make([]string, 0, len(p.Views))
	for _, v := range p.Views {
		ids = append(ids, v.ID)
	}
	return ids
}

// Build constructs every view.
func (p *Presentation) Build() ([]slide.View, error) {
	views := make([]slide.View, 0, len(p.Views))
	for _, spec := range p.Views {
		v, err := spec.Build()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Container builds every view into a new Container rendering into doc.
func (p *Presentation) Container(doc slide.Document, opts ...slide.Option) (*slide.Container, error) {
	views, err := p.Build()
	if err != nil {
		return nil, err
	}
	c := slide.New(doc, opts...)
	for _, v := range views {
		if err := c.AddView(v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Load reads a presentation file. ".yaml" and ".yml" files are read as YAML,
// ".json" as JSON, anything else as the raw format.
func Load(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presentation: %w", err)
	}
	var p *Presentation
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = ParseYAML(data)
	case ".json":
		p, err = ParseJSON(data)
	default:
		p, err = Parse(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// sortedEntries orders keyed text numerically with the default last.
func sortedEntries(m map[string]string) []Entry {
	out := make([]Entry, 0, len(m))
	for k, v := range m {
		out = append(out, Entry{Key: k, Text: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := out[i].Slide()
		b, bok := out[j].Slide()
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return out[i].Key < out[j].Key
		}
	})
	return out
}
