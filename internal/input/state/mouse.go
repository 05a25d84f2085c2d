package state

import (
	"strings"

	"github.com/dshills/actionmap/internal/input"
)

// mouseButtons maps mouse button names (lowercase) to their canonical
// form.
var mouseButtons = map[string]string{
	"left":      "left",
	"middle":    "middle",
	"right":     "right",
	"x1":        "x1",
	"back":      "x1",
	"x2":        "x2",
	"forward":   "x2",
	"wheelup":   "wheelup",
	"wheeldown": "wheeldown",
}

// mouseAxes maps mouse axis names (lowercase) to their canonical form.
var mouseAxes = map[string]string{
	"x":     "x",
	"y":     "y",
	"wheel": "wheel",
}

// Mouse is an in-memory mouse backend tracking button state and
// normalized axis positions in [-1, 1].
type Mouse struct {
	held map[string]bool
	axes map[string]float64
}

// NewMouse returns a mouse backend with no buttons held and all axes
// centered.
func NewMouse() *Mouse {
	return &Mouse{
		held: make(map[string]bool),
		axes: make(map[string]float64),
	}
}

// IsButton reports whether name refers to a mouse button this backend
// recognizes.
func (m *Mouse) IsButton(name string) bool {
	_, ok := mouseButtons[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// IsAxis reports whether name refers to a mouse axis this backend
// recognizes.
func (m *Mouse) IsAxis(name string) bool {
	_, ok := mouseAxes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Pressed reports whether the named button is currently held.
func (m *Mouse) Pressed(name string) bool {
	n, ok := mouseButtons[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	return m.held[n]
}

// Axis returns the current position of the named axis, or 0 if the
// name is not recognized.
func (m *Mouse) Axis(name string) float64 {
	n, ok := mouseAxes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0
	}
	return m.axes[n]
}

// Press records the named button as held. Unrecognized names are
// ignored.
func (m *Mouse) Press(name string) {
	if n, ok := mouseButtons[strings.ToLower(strings.TrimSpace(name))]; ok {
		m.held[n] = true
	}
}

// Release records the named button as no longer held.
func (m *Mouse) Release(name string) {
	if n, ok := mouseButtons[strings.ToLower(strings.TrimSpace(name))]; ok {
		delete(m.held, n)
	}
}

// SetAxis stores a sample for the named axis, clamped to [-1, 1].
// Unrecognized names are ignored.
func (m *Mouse) SetAxis(name string, v float64) {
	n, ok := mouseAxes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return
	}
	m.axes[n] = clampUnit(v)
}

// Reset releases all buttons and centers all axes.
func (m *Mouse) Reset() {
	clear(m.held)
	clear(m.axes)
}

// clampUnit clamps v to [-1, 1].
func clampUnit(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

var _ input.Mouse = (*Mouse)(nil)
