// Package ui is the terminal player for TraceyText presentations.
//
// A Player hosts a slide.Container whose document is a PanelDocument: one
// scrollable ElementPanel per view plus a DisplayLabel for the current
// slide. View markup is rendered to styled text by RenderMarkup.
//
// Building blocks:
//   - View: a region with its own Init/Update/View (Elm-style)
//   - Panel and GridLayout: arrange element panels in one or two columns
//   - FocusManager: which panel receives scroll keys
//   - OverlayStack: modal views (the jump prompt) with a dismiss key
//   - ControlPanel: the floating previous/next/jump box
//   - KeybindRegistry and KeyHandler: key sequences with a SPC leader
//   - Watcher: reloads the presentation when its file changes
package ui
