package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: element panels, the control panel and
// modals all implement it.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
