package ui

import "github.com/charmbracelet/lipgloss"

// ErrBox is a single-line error display at the bottom of the screen.
// Errors here are informational; the grid keeps rendering regardless.
type ErrBox struct {
	width  int
	height int
	err    error
}

// NewErrBox creates an empty error box.
func NewErrBox() *ErrBox {
	return &ErrBox{}
}

// SetError sets the error to display.
func (e *ErrBox) SetError(err error) {
	e.err = err
}

// Clear removes any displayed error.
func (e *ErrBox) Clear() {
	e.err = nil
}

// SetSize sets the box size.
func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var text string
	if e.err != nil {
		text = e.err.Error()
		if len(text) > e.width && e.width > 3 {
			text = text[:e.width-3] + "..."
		}
	}
	return lipgloss.PlaceHorizontal(e.width, lipgloss.Center, errStyle.Render(text))
}
