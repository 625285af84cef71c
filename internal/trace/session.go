package trace

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"traceytext/internal/slide"
)

// Session records one presentation run. It implements slide.Observer: every
// slide change ends the span of the previous slide and opens a new one.
// Re-renders of the slide already on screen (views being added, a reload)
// are not changes.
type Session struct {
	id    string
	ctx   context.Context
	root  oteltrace.Span
	cur   oteltrace.Span
	e     *OTLPExporter
	shown int
	last  int
}

var _ slide.Observer = (*Session)(nil)

// StartSession opens the root span for a presentation file. On a nil
// exporter the returned Session records nothing.
func (e *OTLPExporter) StartSession(ctx context.Context, file string, views int) *Session {
	id := uuid.NewString()
	if e == nil {
		return &Session{id: id}
	}
	ctx, root := e.tracer.Start(ctx, "present",
		oteltrace.WithAttributes(
			attribute.String("tracey.session_id", id),
			attribute.String("tracey.file", file),
			attribute.Int("tracey.views", views),
		))
	return &Session{id: id, ctx: ctx, root: root, e: e}
}

// OnSlideChange implements slide.Observer.
func (s *Session) OnSlideChange(current, max int) {
	if current == s.last {
		return
	}
	s.last = current
	s.shown++
	if s.e == nil {
		return
	}
	if s.cur != nil {
		s.cur.End()
	}
	_, s.cur = s.e.tracer.Start(s.ctx, "slide",
		oteltrace.WithAttributes(
			attribute.Int("tracey.slide", current),
			attribute.Int("tracey.slide.max", max),
		))
}

// ID identifies the session in logs and on the root span.
func (s *Session) ID() string { return s.id }

// Shown returns how many slide changes were observed.
func (s *Session) Shown() int { return s.shown }

// End closes any open spans.
func (s *Session) End() {
	if s.cur != nil {
		s.cur.End()
		s.cur = nil
	}
	if s.root != nil {
		s.root.SetAttributes(attribute.Int("tracey.slides.shown", s.shown))
		s.root.End()
		s.root = nil
	}
}
