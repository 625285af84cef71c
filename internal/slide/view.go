package slide

import (
	"sort"
	"strings"
)

// Kind names a view's rendering strategy.
type Kind string

const (
	KindList         Kind = "list"
	KindMultispan    Kind = "multispan"
	KindAppend       Kind = "append"
	KindAppendScroll Kind = "appendscroll"
	KindSimple       Kind = "simple"
)

// Kinds returns every known view kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindList, KindMultispan, KindAppend, KindAppendScroll, KindSimple}
}

// ParseKind maps a kind name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k.Valid() {
		return k, true
	}
	return "", false
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindList, KindMultispan, KindAppend, KindAppendScroll, KindSimple:
		return true
	default:
		return false
	}
}

// View renders the content of one display element as a function of the slide.
// Slide must be pure: same input, same output, no side effects.
type View interface {
	// ID is the element id the view renders into.
	ID() string
	Kind() Kind
	// Extent is the highest slide number the view declares.
	Extent() int
	Slide(n int) string
}

// HighlightAttr is inserted into the highlighted <li> tag of a ListView.
const HighlightAttr = ` class="traceytexthighlight"`

// ListView highlights one <li> element of a fixed markup string per slide.
// Steps[n-1] names the (1-based) <li> highlighted on slide n.
type ListView struct {
	id      string
	markup  string
	steps   []int
	offsets []int
}

var _ View = (*ListView)(nil)

// NewListView creates a list view over markup with the given step order.
func NewListView(id, markup string, steps []int) *ListView {
	return &ListView{
		id:      id,
		markup:  markup,
		steps:   append([]int(nil), steps...),
		offsets: liOffsets(markup),
	}
}

func (v *ListView) ID() string  { return v.id }
func (v *ListView) Kind() Kind  { return KindList }
func (v *ListView) Extent() int { return len(v.steps) }

// Markup returns the unhighlighted markup.
func (v *ListView) Markup() string { return v.markup }

// Offset returns the insertion offset for the li-th <li> tag (1-based).
func (v *ListView) Offset(li int) (int, bool) {
	if li < 1 || li > len(v.offsets) {
		return 0, false
	}
	return v.offsets[li-1], true
}

// Slide returns the markup with the step's <li> highlighted. Slides past the
// end of the step order, and steps naming a missing <li>, get the plain markup.
func (v *ListView) Slide(n int) string {
	if n < 1 || n > len(v.steps) {
		return v.markup
	}
	off, ok := v.Offset(v.steps[n-1])
	if !ok {
		return v.markup
	}
	return v.markup[:off] + HighlightAttr + v.markup[off:]
}

// liOffsets returns, for every "<li>" in s (ASCII case-insensitive), the
// offset just past "<li", where attributes can be inserted.
func liOffsets(s string) []int {
	var out []int
	for i := 0; i+4 <= len(s); i++ {
		if s[i] == '<' && lower(s[i+1]) == 'l' && lower(s[i+2]) == 'i' && s[i+3] == '>' {
			out = append(out, i+3)
			i += 3
		}
	}
	return out
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// sparse is an immutable slide -> text mapping shared by the map-backed views.
type sparse struct {
	id     string
	slides map[int]string
	keys   []int // ascending
}

func newSparse(id string, slides map[int]string) sparse {
	s := sparse{id: id, slides: make(map[int]string, len(slides))}
	for k, v := range slides {
		s.slides[k] = v
		s.keys = append(s.keys, k)
	}
	sort.Ints(s.keys)
	return s
}

func (s sparse) ID() string { return s.id }

// Extent is the largest key present; holes are allowed.
func (s sparse) Extent() int {
	if len(s.keys) == 0 {
		return 0
	}
	return s.keys[len(s.keys)-1]
}

// MultispanView shows the entry for the slide, or the nearest lower slide
// that has one.
type MultispanView struct {
	sparse
}

var _ View = (*MultispanView)(nil)

// NewMultispanView creates a multispan view. The map is copied.
func NewMultispanView(id string, slides map[int]string) *MultispanView {
	return &MultispanView{sparse: newSparse(id, slides)}
}

func (v *MultispanView) Kind() Kind { return KindMultispan }

// Slide searches downward from n to 1; it never looks ahead.
func (v *MultispanView) Slide(n int) string {
	for s := n; s >= 1; s-- {
		if text, ok := v.slides[s]; ok {
			return text
		}
	}
	return ""
}

// AppendView concatenates every fragment from slide 0 up to the current one.
type AppendView struct {
	sparse
	scroll bool
}

var _ View = (*AppendView)(nil)

// NewAppendView creates an append view. The map is copied.
func NewAppendView(id string, slides map[int]string) *AppendView {
	return &AppendView{sparse: newSparse(id, slides)}
}

// NewAppendScrollView is an append view whose element is scrolled to the
// bottom after each render.
func NewAppendScrollView(id string, slides map[int]string) *AppendView {
	return &AppendView{sparse: newSparse(id, slides), scroll: true}
}

func (v *AppendView) Kind() Kind {
	if v.scroll {
		return KindAppendScroll
	}
	return KindAppend
}

// Slide joins fragments 0..n in ascending slide order.
func (v *AppendView) Slide(n int) string {
	var b strings.Builder
	for _, k := range v.keys {
		if k < 0 {
			continue
		}
		if k > n {
			break
		}
		b.WriteString(v.slides[k])
	}
	return b.String()
}

// SimpleView shows the exact entry for a slide, else its default, else "".
type SimpleView struct {
	sparse
	def        string
	hasDefault bool
}

var _ View = (*SimpleView)(nil)

// NewSimpleView creates a simple view without a default. The map is copied.
func NewSimpleView(id string, slides map[int]string) *SimpleView {
	return &SimpleView{sparse: newSparse(id, slides)}
}

// NewSimpleViewWithDefault creates a simple view that falls back to def.
func NewSimpleViewWithDefault(id string, slides map[int]string, def string) *SimpleView {
	return &SimpleView{sparse: newSparse(id, slides), def: def, hasDefault: true}
}

func (v *SimpleView) Kind() Kind { return KindSimple }

// Default returns the fallback entry and whether one was declared.
func (v *SimpleView) Default() (string, bool) { return v.def, v.hasDefault }

func (v *SimpleView) Slide(n int) string {
	if text, ok := v.slides[n]; ok {
		return text
	}
	if v.hasDefault {
		return v.def
	}
	return ""
}
