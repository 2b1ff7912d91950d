// Package harness drives Bubble Tea models in tests: it feeds messages
// through Update the way the runtime would and exposes the rendered view.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing.
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New creates a Harness and delivers the initial window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{
		t:      t,
		model:  model,
		width:  width,
		height: height,
	}
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// SendMsg sends a tea.Msg to the model and applies the update.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// RunCmd executes a command returned by an update and feeds the resulting
// message back into the model, like the Bubble Tea runtime does.
func (h *Harness) RunCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		h.SendMsg(msg)
	}
}

// SendKey sends a plain key press.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (arrows, tab, enter).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Resize simulates a terminal resize.
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the current rendered view.
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model for type assertions.
func (h *Harness) Model() tea.Model {
	return h.model
}

// TerminalSize names a terminal geometry under test.
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes spans the grid shapes the layout catalog can produce, from a
// viewport that only fits 1x1 up to one that fits 5x5.
var CommonSizes = []TerminalSize{
	{Name: "minimum", Width: 40, Height: 12},
	{Name: "compact", Width: 80, Height: 24},
	{Name: "standard", Width: 120, Height: 40},
	{Name: "large", Width: 200, Height: 50},
}

// RunWithSizes runs a test function for each terminal size.
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs a test function for all common terminal sizes.
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}
