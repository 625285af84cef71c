package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"traceytext/internal/slide"
	"traceytext/internal/source"
	"traceytext/internal/ui/textutil"
)

const (
	headerRows = 1
	footerRows = 1
)

// Loader re-reads the presentation for a reload.
type Loader func() (*source.Presentation, error)

// PlayerOptions configures a Player.
type PlayerOptions struct {
	Title string
	// Highlight is the lipgloss colour for highlighted list items when the
	// presentation does not give a usable one.
	Highlight string
	// ShowPanel shows the control panel even if the presentation does not
	// ask for it.
	ShowPanel      bool
	FloatX, FloatY int
	Refresh        time.Duration
	// Start is the slide to open on; it is clamped to the presentation.
	Start     int
	Logger    *zap.Logger
	Observers []slide.Observer
	// Load enables reloading (SPC r). Watcher reloads on file changes and
	// needs Load too.
	Load    Loader
	Watcher *Watcher
}

// Player is the root model of the terminal player. It hosts a
// slide.Container whose document is a set of element panels.
type Player struct {
	Mode       Mode
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	opts      PlayerOptions
	logger    *zap.Logger
	doc       *PanelDocument
	container *slide.Container
	layout    *GridLayout
	focus     *FocusManager
	panel     *ControlPanel
	wantPanel bool
	help      help.Model
	status    string
	statusErr bool
	width     int
	height    int
}

// Ensure Player implements tea.Model.
var _ tea.Model = (*Player)(nil)

// NewPlayer builds a player for p.
func NewPlayer(p *source.Presentation, opts PlayerOptions) (*Player, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := &Player{
		Mode:   ModePresent,
		opts:   opts,
		logger: opts.Logger,
		help:   newHelpModel(),
		panel:  NewControlPanel(nil, opts.FloatX, opts.FloatY, opts.Refresh),
	}
	if opts.Watcher != nil && opts.Load != nil {
		m.Mode = ModeWatch
	}
	m.KeyHandler = NewKeyHandler(m.bindings())
	if err := m.load(p, max(opts.Start, 1)); err != nil {
		return nil, err
	}
	m.wantPanel = p.ControlPanel || opts.ShowPanel
	return m, nil
}

// Container returns the container currently shown.
func (m *Player) Container() *slide.Container { return m.container }

// Document returns the panels currently shown.
func (m *Player) Document() *PanelDocument { return m.doc }

// ControlPanel returns the floating control panel.
func (m *Player) ControlPanel() *ControlPanel { return m.panel }

// Focus returns the id of the panel receiving scroll keys.
func (m *Player) Focus() string { return m.focus.Current }

// Status returns the status line message, if any.
func (m *Player) Status() string { return m.status }

// load replaces the document and container with ones built from p, opening
// on slide start.
func (m *Player) load(p *source.Presentation, start int) error {
	doc := NewPanelDocument(HighlightStyle(p.Highlight, m.opts.Highlight))
	for _, v := range p.Views {
		doc.AddPanel(v.ID, fmt.Sprintf("%s · %s", v.ID, v.Kind))
	}
	label := doc.AddLabel(FloatingDisplayID)

	opts := []slide.Option{slide.WithLogger(m.logger), slide.WithStart(start)}
	for _, o := range m.opts.Observers {
		opts = append(opts, slide.WithObserver(o))
	}
	c, err := p.Container(doc, opts...)
	if err != nil {
		return fmt.Errorf("build presentation: %w", err)
	}
	c.AddDisplay(FloatingDisplayID)

	prevFocus := ""
	if m.focus != nil {
		prevFocus = m.focus.Current
	}
	m.doc = doc
	m.container = c
	m.panel.label = label
	m.layout = NewGridLayout(doc.Panels(), headerRows, footerRows)
	m.focus = NewFocusManager(m.layout.FocusOrder(), m.onFocusChange)
	if prevFocus != "" {
		m.focus.SetFocus(prevFocus)
	}
	if m.width > 0 {
		m.layout.Resize(m.width, m.height)
	}
	m.logger.Debug("presentation loaded",
		zap.Int("views", len(p.Views)),
		zap.Int("slide", c.Current()),
		zap.Int("max", c.Max()))
	return nil
}

func (m *Player) onFocusChange(from, to string) {
	if p, ok := m.doc.Panel(from); ok {
		p.SetFocused(false)
	}
	if p, ok := m.doc.Panel(to); ok {
		p.SetFocused(true)
	}
}

func (m *Player) bindings() *KeybindRegistry {
	next := send(NextSlideMsg{})
	prev := send(PreviousSlideMsg{})
	first := send(FirstSlideMsg{})
	last := send(LastSlideMsg{})
	jump := send(ShowJumpMsg{})
	toggle := send(ToggleControlPanelMsg{})

	reg := NewKeybindRegistry()
	reg.BindWithDesc("n", next, "Next")
	reg.BindWithDesc("right", next, "Next")
	reg.BindWithDesc("l", next, "Next")
	reg.BindWithDesc("p", prev, "Prev")
	reg.BindWithDesc("left", prev, "Prev")
	reg.BindWithDesc("h", prev, "Prev")
	reg.BindWithDesc("g", jump, "Jump")
	reg.BindWithDesc("home", first, "First")
	reg.BindWithDesc("end", last, "Last")
	reg.BindWithDesc("c", toggle, "Panel")
	reg.BindWithDesc("tab", send(FocusNextMsg{}), "Focus")
	reg.BindWithDesc("shift+tab", send(FocusPrevMsg{}), "Focus")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC c", toggle, "Control panel")
	reg.BindWithDesc("SPC g f", first, "First slide")
	reg.BindWithDesc("SPC g l", last, "Last slide")
	reg.BindWithDesc("SPC g j", jump, "Jump to slide")
	reg.BindWithDescForMode("SPC r", send(ReloadMsg{}), "Reload", []Mode{ModeWatch})
	return reg
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Init implements tea.Model.
func (m *Player) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.wantPanel {
		cmds = append(cmds, m.panel.Show())
	}
	if m.opts.Watcher != nil {
		cmds = append(cmds, m.opts.Watcher.Wait())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout.Resize(msg.Width, msg.Height)
		m.panel.Update(msg)
		return m, nil

	case panelTickMsg:
		_, cmd := m.panel.Update(msg)
		return m, cmd

	case NextSlideMsg:
		m.container.Next()
		return m, nil
	case PreviousSlideMsg:
		m.container.Previous()
		return m, nil
	case FirstSlideMsg:
		m.container.Jump(1)
		return m, nil
	case LastSlideMsg:
		m.container.Jump(m.container.Max())
		return m, nil

	case ShowJumpMsg:
		modal := NewJumpModal(m.container.Max())
		m.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
		return m, modal.Init()
	case JumpMsg:
		m.Overlays.Pop()
		if m.container.JumpString(msg.Input) {
			m.setStatus("", false)
		} else {
			m.setStatus(fmt.Sprintf("not a slide number: %q", msg.Input), true)
		}
		return m, nil
	case DismissModalMsg:
		m.Overlays.Pop()
		return m, nil

	case ToggleControlPanelMsg:
		return m, m.panel.Toggle()
	case FocusNextMsg:
		m.focus.Next()
		return m, nil
	case FocusPrevMsg:
		m.focus.Prev()
		return m, nil

	case ReloadMsg:
		return m, m.reload()
	case SourceChangedMsg:
		return m, tea.Batch(m.reload(), m.opts.Watcher.Wait())
	case presentationLoadedMsg:
		if err := m.load(msg.Presentation, m.container.Current()); err != nil {
			m.logger.Warn("reload failed", zap.Error(err))
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.setStatus("reloaded", false)
		return m, nil
	case errMsg:
		m.logger.Warn("reload failed", zap.Error(msg.err))
		m.setStatus(msg.err.Error(), true)
		return m, nil
	case watchErrMsg:
		m.logger.Warn("watch error", zap.Error(msg.err))
		m.setStatus(msg.err.Error(), true)
		return m, m.opts.Watcher.Wait()

	case tea.KeyMsg:
		if m.Overlays.Len() > 0 {
			cmd, _ := m.Overlays.UpdateTop(msg)
			return m, cmd
		}
		if consumed, cmd := m.KeyHandler.Handle(msg); consumed {
			return m, cmd
		}
		if p, ok := m.doc.Panel(m.focus.Current); ok {
			_, cmd := p.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Anything else (cursor blink) goes to the modal, if one is open.
	if cmd, ok := m.Overlays.UpdateTop(msg); ok {
		return m, cmd
	}
	return m, nil
}

func (m *Player) reload() tea.Cmd {
	load := m.opts.Load
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		p, err := load()
		if err != nil {
			return errMsg{err: err}
		}
		return presentationLoadedMsg{Presentation: p}
	}
}

func (m *Player) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

// View implements tea.Model.
func (m *Player) View() string {
	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.layout.Render(m.width),
		m.footer(),
	)
	if m.panel.Visible() {
		x, y := m.panel.Position()
		screen = PlaceOverlay(screen, m.panel.View(), x, y+headerRows)
	}
	if box := RenderKeybindHelp(m.KeyHandler, m.Mode, m.width); box != "" {
		y := lipgloss.Height(screen) - lipgloss.Height(box)
		screen = PlaceOverlay(screen, box, 0, y)
	}
	return m.Overlays.Render(screen, m.width, m.height)
}

func (m *Player) header() string {
	title := m.opts.Title
	if title == "" {
		title = "tracey"
	}
	counter := fmt.Sprintf("Slide %d/%d", m.container.Current(), m.container.Max())
	return textutil.Spread(Styles.Title.Render(title), Styles.Status.Render(counter), m.width)
}

func (m *Player) footer() string {
	if m.status != "" {
		style := Styles.Hint
		if m.statusErr {
			style = Styles.Error
		}
		msg := m.status
		if m.width > 0 {
			msg = textutil.PadRightVisual(msg, m.width)
		}
		return style.Render(msg)
	}
	return m.help.View(NewKeyMap(m.KeyHandler.Registry, nil, m.Mode))
}
