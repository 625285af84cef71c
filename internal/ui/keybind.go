package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is how the space leader is written in key sequences.
const leaderSeq = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []Mode // empty: every mode
}

// KeybindRegistry maps key sequences to commands.
// Sequences are written spacemacs-style: "SPC" is the leader, "SPC g l" is
// SPC, then g, then l. Plain keys use tea.KeyMsg.String() names: "n",
// "right", "ctrl+c", "shift+tab".
type KeybindRegistry struct {
	bindings map[string]*binding
	order    []string // first-bind order, for stable help
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]*binding)}
}

// Bind registers seq without a help description.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers seq for every mode.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq, replacing any earlier binding. With
// modes set, help only offers the binding in those modes; Lookup finds it
// regardless and the player decides whether it acts.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []Mode) {
	n := canonicalSeq(seq)
	if _, seen := r.bindings[n]; !seen {
		r.order = append(r.order, n)
	}
	r.bindings[n] = &binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	if b, ok := r.bindings[canonicalSeq(seq)]; ok {
		return b.cmd
	}
	return nil
}

// HasPrefix reports whether a longer sequence continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := canonicalSeq(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// submenuLabels names leader keys that open a further level.
var submenuLabels = map[string]string{
	"g": "Go to",
}

// LeaderHints returns the next keys available after typed ("" means just
// after SPC), mapped to their descriptions, for bindings offered in mode.
// A key that opens a submenu is labelled by submenuLabels, or "key…".
func (r *KeybindRegistry) LeaderHints(typed string, mode Mode) map[string]string {
	prefix := leaderSeq + " "
	if typed != "" {
		prefix = canonicalSeq(typed) + " "
	}
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) || !b.offeredIn(mode) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(rest) == 0 {
			continue
		}
		next := rest[0]
		switch {
		case r.HasPrefix(prefix + next):
			if label, ok := submenuLabels[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

func (b *binding) offeredIn(mode Mode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// KeyBindings returns the single-key (non-leader) bindings for mode as
// help bindings, one per description, in the order they were first bound.
// "n", "right" and "l" all bound as "Next" become one "n/→/l next" entry.
func (r *KeybindRegistry) KeyBindings(mode Mode) []key.Binding {
	var descs []string
	keys := make(map[string][]string)
	for _, seq := range r.order {
		b := r.bindings[seq]
		if b.cmd == nil || strings.HasPrefix(seq, leaderSeq) || !b.offeredIn(mode) {
			continue
		}
		d := b.desc
		if d == "" {
			d = seq
		}
		if _, ok := keys[d]; !ok {
			descs = append(descs, d)
		}
		keys[d] = append(keys[d], seq)
	}
	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		labels := make([]string, len(keys[d]))
		for i, k := range keys[d] {
			labels[i] = keyLabel(k)
		}
		out = append(out, key.NewBinding(
			key.WithKeys(keys[d]...),
			key.WithHelp(strings.Join(labels, "/"), strings.ToLower(d)),
		))
	}
	return out
}

// keyLabel shortens arrow key names for the help bar.
func keyLabel(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

// canonicalSeq rewrites space, however it was spelled, as SPC.
func canonicalSeq(seq string) string {
	parts := strings.Fields(seq)
	if seq == " " {
		parts = []string{" "}
	}
	for i, p := range parts {
		parts[i] = seqPart(p)
	}
	return strings.Join(parts, " ")
}

// seqPart maps one tea key name to its sequence spelling. Bubble Tea
// reports the space bar as " ".
func seqPart(k string) string {
	if k == " " || k == "space" {
		return leaderSeq
	}
	return k
}

// KeyHandler tracks the leader state and resolves key presses against a
// registry.
type KeyHandler struct {
	Registry *KeybindRegistry
	// LeaderWaiting is set between SPC and the end of a leader sequence.
	LeaderWaiting bool
	// Buffer holds the leader sequence typed so far, starting with SPC.
	Buffer []string
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle resolves msg. consumed means the key belongs to the keybind system
// and must not reach the focused view; cmd is the bound command, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := seqPart(msg.String())

	switch {
	case part == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil

	case part == leaderSeq && !h.LeaderWaiting:
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil

	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, part)
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			// Dead end: drop the sequence, swallow the key.
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(part); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap adapts the registry to help.KeyMap. Outside leader mode it lists
// the single-key bindings; after SPC it lists what may follow.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       Mode
}

// NewKeyMap creates a KeyMap. keyHandler may be nil.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode Mode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	if km.keyHandler == nil || !km.keyHandler.LeaderWaiting {
		return km.registry.KeyBindings(km.mode)
	}
	hints := km.registry.LeaderHints(strings.Join(km.keyHandler.Buffer, " "), km.mode)
	if len(hints) == 0 {
		return nil
	}
	next := make([]string, 0, len(hints))
	for k := range hints {
		next = append(next, k)
	}
	sort.Strings(next)

	out := make([]key.Binding, 0, len(next)+1)
	for _, k := range next {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp implements help.KeyMap with ShortHelp as its only column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
