package slide

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownViewKind is returned by AddView for a view whose Kind is not one
// of the known kinds.
var ErrUnknownViewKind = errors.New("unknown view kind")

// Observer is notified after every render.
type Observer interface {
	OnSlideChange(current, max int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(current, max int)

func (f ObserverFunc) OnSlideChange(current, max int) { f(current, max) }

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver adds an observer.
func WithObserver(o Observer) Option {
	return func(c *Container) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithStart sets the initial slide. It is clamped once views are added.
func WithStart(n int) Option {
	return func(c *Container) {
		if n > 1 {
			c.start = n
		}
	}
}

// Container keeps its views and displays on the same slide.
// Invariant: 1 <= Current() <= Max().
//
// A Container is not safe for concurrent use; drive it from one goroutine
// (the UI event loop).
type Container struct {
	doc       Document
	current   int
	max       int
	start     int
	views     []View
	displays  []string
	logger    *zap.Logger
	observers []Observer
}

// New creates a Container rendering into doc, positioned on slide 1 of 1.
// A nil doc is treated as a document with no elements.
func New(doc Document, opts ...Option) *Container {
	c := &Container{
		doc:     doc,
		current: 1,
		max:     1,
		start:   1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the current slide number.
func (c *Container) Current() int { return c.current }

// Max returns the highest slide any view declares (at least 1).
func (c *Container) Max() int { return c.max }

// Views returns the views in the order they were added.
func (c *Container) Views() []View {
	return append([]View(nil), c.views...)
}

// Displays returns the display target ids in the order they were added.
func (c *Container) Displays() []string {
	return append([]string(nil), c.displays...)
}

// AddView appends v, widens Max to cover it and re-renders so v starts in sync.
// A view of unknown kind is rejected and the Container is left unchanged.
func (c *Container) AddView(v View) error {
	if v == nil || !v.Kind().Valid() {
		kind := Kind("<nil>")
		if v != nil {
			kind = v.Kind()
		}
		return fmt.Errorf("add view: %w: %q", ErrUnknownViewKind, kind)
	}
	c.views = append(c.views, v)
	if ext := v.Extent(); ext > c.max {
		c.max = ext
	}
	target := c.current
	if c.start > target {
		target = min(c.start, c.max)
	}
	c.changeTo(target)
	if c.current >= c.start {
		c.start = 1
	}
	return nil
}

// AddDisplay registers an element id that shows the current slide number.
func (c *Container) AddDisplay(id string) {
	c.displays = append(c.displays, id)
	c.changeTo(c.current)
}

// Next advances one slide. No-op on the last slide.
func (c *Container) Next() {
	if c.current >= c.max {
		return
	}
	c.changeTo(c.current + 1)
}

// Previous goes back one slide. No-op on slide 1.
func (c *Container) Previous() {
	if c.current <= 1 {
		return
	}
	c.changeTo(c.current - 1)
}

// Jump moves to slide n, clamped into [1, Max()].
func (c *Container) Jump(n int) {
	if n < 1 {
		n = 1
	}
	if n > c.max {
		n = c.max
	}
	c.changeTo(n)
}

// JumpString jumps to the integer that s starts with, the way a jump text
// field is read: surrounding whitespace and trailing garbage are ignored.
// Input without a leading integer is ignored. Reports whether it jumped.
func (c *Container) JumpString(s string) bool {
	n, ok := ParseSlideNumber(s)
	if !ok {
		c.logger.Debug("ignoring non-numeric jump", zap.String("input", s))
		return false
	}
	c.Jump(n)
	return true
}

// ParseSlideNumber reads an optionally signed decimal prefix of s.
// Values out of int range saturate.
func ParseSlideNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only ErrRange is possible on a pure digit string.
		if neg {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if neg {
		n = -n
	}
	return n, true
}

func (c *Container) changeTo(n int) {
	c.current = n
	c.render(n)
	for _, o := range c.observers {
		o.OnSlideChange(c.current, c.max)
	}
}

func (c *Container) render(n int) {
	for _, v := range c.views {
		el, ok := c.lookup(v.ID())
		if !ok {
			continue
		}
		el.SetContent(v.Slide(n))
		if v.Kind() == KindAppendScroll {
			el.ScrollToBottom()
		}
	}
	label := strconv.Itoa(n)
	for _, id := range c.displays {
		el, ok := c.lookup(id)
		if !ok {
			continue
		}
		el.SetContent(label)
	}
}

func (c *Container) lookup(id string) (Element, bool) {
	if c.doc == nil {
		return nil, false
	}
	el, ok := c.doc.Element(id)
	if !ok || el == nil {
		c.logger.Debug("element not found, skipping", zap.String("id", id))
		return nil, false
	}
	return el, true
}
