package ui

import "traceytext/internal/source"

// NextSlideMsg advances the container (n, l, right).
type NextSlideMsg struct{}

// PreviousSlideMsg steps the container back (p, h, left).
type PreviousSlideMsg struct{}

// FirstSlideMsg jumps to slide 1 (home, SPC g f).
type FirstSlideMsg struct{}

// LastSlideMsg jumps to the last slide (end, SPC g l).
type LastSlideMsg struct{}

// ShowJumpMsg opens the jump prompt (g, SPC g j).
type ShowJumpMsg struct{}

// JumpMsg carries the jump prompt's text. It is read the way a page's jump
// field is: a leading integer, anything else ignored.
type JumpMsg struct {
	Input string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// ToggleControlPanelMsg shows or hides the floating control panel (c, SPC c).
type ToggleControlPanelMsg struct{}

// FocusNextMsg and FocusPrevMsg rotate scroll focus between panels (tab, shift+tab).
type FocusNextMsg struct{}

type FocusPrevMsg struct{}

// ReloadMsg re-reads the presentation (SPC r, or a watched file change).
type ReloadMsg struct{}

// SourceChangedMsg is sent by the Watcher when the source file changes.
type SourceChangedMsg struct {
	Path string
}

// presentationLoadedMsg delivers a re-read presentation.
type presentationLoadedMsg struct {
	Presentation *source.Presentation
}

// errMsg reports a failure to show on the status line.
type errMsg struct {
	err error
}

// watchErrMsg reports a watcher failure. Watching continues.
type watchErrMsg struct {
	err error
}

// panelTickMsg drives the control panel's position refresh. gen ties the
// tick to one Show; ticks from an older generation end their loop.
type panelTickMsg struct {
	gen int
}
