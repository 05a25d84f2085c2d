package state

import (
	"math"
	"strings"

	"github.com/dshills/actionmap/internal/input"
)

// Joystick is an in-memory joystick backend shaped by a Layout. It
// recognizes only the button and axis names the layout declares, and
// applies the layout deadzone when axis samples are stored.
type Joystick struct {
	layout       Layout
	held         map[string]bool
	axes         map[string]float64
	knownButtons map[string]bool
	knownAxes    map[string]bool
}

// NewJoystick returns a joystick backend for the given layout.
func NewJoystick(layout Layout) *Joystick {
	j := &Joystick{
		layout:       layout,
		held:         make(map[string]bool),
		axes:         make(map[string]float64),
		knownButtons: make(map[string]bool, len(layout.Buttons)),
		knownAxes:    make(map[string]bool, len(layout.Axes)),
	}
	for _, b := range layout.Buttons {
		j.knownButtons[strings.ToLower(b)] = true
	}
	for _, a := range layout.Axes {
		j.knownAxes[strings.ToLower(a)] = true
	}
	return j
}

// Layout returns the layout this backend was built from.
func (j *Joystick) Layout() Layout {
	return j.layout
}

// IsButton reports whether name is a button in the layout.
func (j *Joystick) IsButton(name string) bool {
	return j.knownButtons[canonical(name)]
}

// IsAxis reports whether name is an axis in the layout.
func (j *Joystick) IsAxis(name string) bool {
	return j.knownAxes[canonical(name)]
}

// Pressed reports whether the named button is currently held.
func (j *Joystick) Pressed(name string) bool {
	n := canonical(name)
	if !j.knownButtons[n] {
		return false
	}
	return j.held[n]
}

// Axis returns the current position of the named axis, or 0 if the
// name is not in the layout.
func (j *Joystick) Axis(name string) float64 {
	n := canonical(name)
	if !j.knownAxes[n] {
		return 0
	}
	return j.axes[n]
}

// Press records the named button as held. Names outside the layout are
// ignored.
func (j *Joystick) Press(name string) {
	n := canonical(name)
	if j.knownButtons[n] {
		j.held[n] = true
	}
}

// Release records the named button as no longer held.
func (j *Joystick) Release(name string) {
	n := canonical(name)
	if j.knownButtons[n] {
		delete(j.held, n)
	}
}

// SetAxis stores a sample for the named axis. The value is clamped to
// [-1, 1] and zeroed when its magnitude falls inside the layout
// deadzone. Names outside the layout are ignored.
func (j *Joystick) SetAxis(name string, v float64) {
	n := canonical(name)
	if !j.knownAxes[n] {
		return
	}
	v = clampUnit(v)
	if math.Abs(v) < j.layout.Deadzone {
		v = 0
	}
	j.axes[n] = v
}

// Reset releases all buttons and centers all axes.
func (j *Joystick) Reset() {
	clear(j.held)
	clear(j.axes)
}

// canonical lowercases and trims an identifier for map lookup.
func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var _ input.Joystick = (*Joystick)(nil)
