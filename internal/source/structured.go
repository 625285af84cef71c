package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"traceytext/internal/jsonutil"
	"traceytext/internal/slide"
)

// document is the YAML and JSON form of a presentation.
type document struct {
	Highlight    string         `yaml:"highlight" json:"highlight"`
	ControlPanel bool           `yaml:"controlPanel" json:"controlPanel"`
	Views        []documentView `yaml:"views" json:"views"`
}

type documentView struct {
	Kind      string            `yaml:"kind" json:"kind"`
	ID        string            `yaml:"id" json:"id"`
	Style     string            `yaml:"style" json:"style"`
	StepOrder []int             `yaml:"stepOrder" json:"stepOrder"`
	Markup    string            `yaml:"markup" json:"markup"`
	Slides    map[string]string `yaml:"slides" json:"slides"`
}

// ParseYAML reads the YAML form of a presentation. Unknown fields are errors.
//
//	highlight: yellow
//	controlPanel: true
//	views:
//	  - kind: simple
//	    id: caption
//	    slides:
//	      "1": Start here
//	      default: ...
func ParseYAML(data []byte) (*Presentation, error) {
	var raw document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return raw.presentation()
}

// ParseJSON reads the JSON form of a presentation, which has the same
// fields as the YAML form. Unknown fields are errors.
func ParseJSON(data []byte) (*Presentation, error) {
	var raw document
	if err := jsonutil.DecodeStrict(data, &raw, "decode json"); err != nil {
		return nil, err
	}
	return raw.presentation()
}

func (raw document) presentation() (*Presentation, error) {
	p := &Presentation{Highlight: raw.Highlight, ControlPanel: raw.ControlPanel}
	for i, v := range raw.Views {
		kind, ok := slide.ParseKind(v.Kind)
		if !ok {
			return nil, fmt.Errorf("views[%d]: %w: %q", i, ErrUnsupportedKind, v.Kind)
		}
		if v.ID == "" {
			return nil, fmt.Errorf("views[%d]: missing id", i)
		}
		spec := ViewSpec{Kind: kind, ID: v.ID, Style: v.Style}
		if kind == slide.KindList {
			spec.StepOrder = v.StepOrder
			spec.Markup = v.Markup
		} else {
			for _, e := range sortedEntries(v.Slides) {
				if _, ok := e.Slide(); !ok && e.Key != DefaultKey {
					return nil, fmt.Errorf("views[%d]: slide key %q is neither a number nor %q", i, e.Key, DefaultKey)
				}
				spec.Entries = append(spec.Entries, e)
			}
		}
		p.Views = append(p.Views, spec)
	}
	return p, nil
}
