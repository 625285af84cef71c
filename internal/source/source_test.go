package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traceytext/internal/slide"
)

func TestParse_Sample(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "bubblesort.tt"))
	require.NoError(t, err)

	assert.True(t, p.ControlPanel)
	assert.Equal(t, "#FFFF99", p.Highlight)
	require.Len(t, p.Views, 4)
	assert.Equal(t, []string{"code", "array", "log", "caption"}, p.ElementIDs())

	code := p.Views[0]
	assert.Equal(t, slide.KindList, code.Kind)
	assert.Equal(t, "width:400px;font-family:monospace", code.Style)
	assert.Equal(t, []int{1, 2, 3, 2, 3, 4}, code.StepOrder)
	assert.Contains(t, code.Markup, "<li>for i in range(len(a)):</li>\n")
	assert.Contains(t, code.Markup, "</ol>\n")

	log := p.Views[2]
	assert.Equal(t, slide.KindAppendScroll, log.Kind)
	require.Len(t, log.Entries, 3)
	assert.Equal(t, Entry{Key: "0", Text: "Starting sort<br>"}, log.Entries[0])
	assert.Equal(t, "swap<br>\nwith a multi-line note", log.Entries[2].Text)

	caption := p.Views[3]
	assert.Equal(t, "", caption.Style)
	assert.Equal(t, []Entry{{Key: "1", Text: "Outer loop"}, {Key: "default", Text: "Inner loop"}}, caption.Entries)
}

func TestParse_ContainerFromSample(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "bubblesort.tt"))
	require.NoError(t, err)

	doc := slide.NewMemoryDocument(p.ElementIDs()...)
	c, err := p.Container(doc)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Max())

	c.Jump(4)
	got, _ := doc.Content("array")
	assert.Equal(t, "[1, 5, 4]", got)
	got, _ = doc.Content("log")
	assert.Equal(t, "Starting sort<br>compare 5 and 1<br>swap<br>\nwith a multi-line note", got)
	got, _ = doc.Content("caption")
	assert.Equal(t, "Inner loop", got)
	got, _ = doc.Content("code")
	assert.Contains(t, got, `<li class="traceytexthighlight">  for j`)
}

func TestParse_IgnoresGibberishBeforeViews(t *testing.T) {
	p, err := Parse("hello\n\nsomething else\nview.simple.s.\n1.x\n")
	require.NoError(t, err)
	assert.False(t, p.ControlPanel)
	require.Len(t, p.Views, 1)
	assert.Equal(t, "s", p.Views[0].ID)
}

func TestParse_SettingsAreCaseInsensitive(t *testing.T) {
	p, err := Parse("ControlPanel\nTraceyTextHighlight   red  \n")
	require.NoError(t, err)
	assert.True(t, p.ControlPanel)
	assert.Equal(t, "red", p.Highlight)
	assert.Empty(t, p.Views)
}

func TestParse_TextBeforeFirstEntryDropped(t *testing.T) {
	p, err := Parse("view.multispan.m.\n\nstray\n2.two\n")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Key: "2", Text: "two"}}, p.Views[0].Entries)
}

func TestParse_CRLF(t *testing.T) {
	p, err := Parse("view.simple.s.\r\n1.one\r\nmore\r\n")
	require.NoError(t, err)
	assert.Equal(t, "one\nmore", p.Views[0].Entries[0].Text)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"bad step order", "view.list.l.\n1,x,3\n<li>a\n", 2},
		{"missing step order", "view.list.l.\n", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestParseStepOrder(t *testing.T) {
	steps, err := parseStepOrder(" [1, 2 ,3,] ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, steps)

	steps, err = parseStepOrder("")
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseYAML_Sample(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "bubblesort.yaml"))
	require.NoError(t, err)

	assert.True(t, p.ControlPanel)
	require.Len(t, p.Views, 3)
	assert.Equal(t, []int{1, 2, 3, 2, 3, 4}, p.Views[0].StepOrder)

	// Entries come back in slide order with the default last.
	keys := func(es []Entry) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Key)
		}
		return out
	}
	assert.Equal(t, []string{"1", "3", "5"}, keys(p.Views[1].Entries))
	assert.Equal(t, []string{"1", "default"}, keys(p.Views[2].Entries))

	v, err := p.Views[2].Build()
	require.NoError(t, err)
	assert.Equal(t, "Inner loop", v.Slide(7))
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown kind", "views:\n  - kind: carousel\n    id: x\n"},
		{"missing id", "views:\n  - kind: simple\n"},
		{"bad key", "views:\n  - kind: simple\n    id: s\n    slides:\n      first: x\n"},
		{"signed key", "views:\n  - kind: simple\n    id: s\n    slides:\n      \"+1\": a\n"},
		{"negative key", "views:\n  - kind: multispan\n    id: s\n    slides:\n      \"-2\": b\n"},
		{"unknown field", "views:\n  - kind: simple\n    id: s\n    colour: red\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.src))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	p, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, p.Views)
}

func TestBuild_DefaultIgnoredOutsideSimple(t *testing.T) {
	spec := ViewSpec{
		Kind:    slide.KindMultispan,
		ID:      "m",
		Entries: []Entry{{Key: "default", Text: "d"}, {Key: "2", Text: "two"}},
	}
	v, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, "", v.Slide(1))
	assert.Equal(t, 2, v.Extent())
}

func TestBuild_UnsupportedKind(t *testing.T) {
	_, err := ViewSpec{Kind: "carousel", ID: "x"}.Build()
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.tt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_MatchesYAML(t *testing.T) {
	fromJSON, err := Load(filepath.Join("testdata", "bubblesort.json"))
	require.NoError(t, err)
	fromYAML, err := Load(filepath.Join("testdata", "bubblesort.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Errorf("JSON presentation differs from YAML (-yaml +json):\n%s", diff)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", `{"views":[{"kind":"simple","id":"s","colour":"red"}]}`},
		{"unknown kind", `{"views":[{"kind":"carousel","id":"x"}]}`},
		{"malformed", `{"views":[`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tc.src))
			assert.Error(t, err)
		})
	}
}

func TestEntry_Slide(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"007", 7, true},
		{"default", 0, false},
		{"+1", 0, false},
		{"-2", 0, false},
		{" 3", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			n, ok := Entry{Key: tc.key}.Slide()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestParseJSON_SignedKeyRejected(t *testing.T) {
	_, err := ParseJSON([]byte(`{"views":[{"kind":"simple","id":"cap","slides":{"+1":"a","-2":"b"}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slide key")
}

func TestParse_CRLFListMarkup(t *testing.T) {
	p, err := Parse("view.list.code.\r\n1,2\r\n<ul><li>a</li>\r\n<li>b</li></ul>\r\n")
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>a</li>\n<li>b</li></ul>\n", p.Views[0].Markup)
}
