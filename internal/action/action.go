package action

import (
	"math"

	"github.com/dshills/actionmap/internal/ident"
	"github.com/dshills/actionmap/internal/input"
)

// DefaultPressThreshold is the press threshold assigned to new actions.
const DefaultPressThreshold = 0.5

// Action is a named logical input resolved from an ordered list of
// bindings. Actions own their bindings; mutation goes through the accessor
// methods so resolution order stays explicit.
type Action struct {
	name      string
	threshold float64
	bindings  []Binding
}

// New creates an action with the given name and the default press
// threshold. The name is sanitized first; a name that sanitizes to nothing
// leaves the action invalid.
func New(name string) *Action {
	return &Action{
		name:      ident.Sanitize(name),
		threshold: DefaultPressThreshold,
	}
}

// Name returns the sanitized action name.
func (a *Action) Name() string {
	return a.name
}

// SetName replaces the action name, sanitizing it first. Setting a blank or
// unsalvageable name stores the empty string and leaves the action invalid;
// it never fails.
func (a *Action) SetName(name string) {
	a.name = ident.Sanitize(name)
}

// IsValid reports whether the action carries a usable name.
func (a *Action) IsValid() bool {
	return a.name != ""
}

// PressThreshold returns the value magnitude at which the action reads as
// pressed.
func (a *Action) PressThreshold() float64 {
	return a.threshold
}

// SetPressThreshold stores v clamped to [0, 1]. Values that compare with
// nothing (NaN) clamp to zero.
func (a *Action) SetPressThreshold(v float64) {
	switch {
	case v > 1:
		a.threshold = 1
	case v >= 0:
		a.threshold = v
	default:
		a.threshold = 0
	}
}

// Add appends a binding and returns the action for chaining.
func (a *Action) Add(b Binding) *Action {
	a.bindings = append(a.bindings, b)
	return a
}

// Len returns the number of bindings.
func (a *Action) Len() int {
	return len(a.bindings)
}

// Binding returns the binding at index i.
func (a *Action) Binding(i int) (Binding, bool) {
	if i < 0 || i >= len(a.bindings) {
		return Binding{}, false
	}
	return a.bindings[i], true
}

// SetBinding replaces the binding at index i.
func (a *Action) SetBinding(i int, b Binding) bool {
	if i < 0 || i >= len(a.bindings) {
		return false
	}
	a.bindings[i] = b
	return true
}

// RemoveBinding deletes the binding at index i, preserving the order of the
// rest.
func (a *Action) RemoveBinding(i int) bool {
	if i < 0 || i >= len(a.bindings) {
		return false
	}
	a.bindings = append(a.bindings[:i], a.bindings[i+1:]...)
	return true
}

// Bindings returns a copy of the binding list in resolution order.
func (a *Action) Bindings() []Binding {
	out := make([]Binding, len(a.bindings))
	copy(out, a.bindings)
	return out
}

// ClearBindings drops all bindings.
func (a *Action) ClearBindings() {
	a.bindings = nil
}

// Clone creates a deep copy of the action.
func (a *Action) Clone() *Action {
	clone := &Action{
		name:      a.name,
		threshold: a.threshold,
	}
	if len(a.bindings) > 0 {
		clone.bindings = make([]Binding, len(a.bindings))
		copy(clone.bindings, a.bindings)
	}
	return clone
}

// Value resolves the action against the given devices. Bindings are
// consulted in order: an invalid binding is skipped, the first axis binding
// reading non-zero wins outright, and button bindings accumulate their
// positive and negative presses across the whole list. When only positive
// presses were seen the value is +1, only negative -1, otherwise 0. An
// action with no bindings resolves to zero. The value is computed fresh on
// every call.
func (a *Action) Value(devs input.Set) float64 {
	var posSeen, negSeen bool

	for _, b := range a.bindings {
		if !b.IsValid(devs) {
			continue
		}
		switch b.Kind {
		case input.KindAxis:
			if v := b.axisValue(devs); v != 0 {
				return v
			}
		case input.KindButton:
			pos, neg := b.buttonState(devs)
			posSeen = posSeen || pos
			negSeen = negSeen || neg
		}
	}

	switch {
	case posSeen && !negSeen:
		return 1
	case negSeen && !posSeen:
		return -1
	default:
		return 0
	}
}

// Pressed reports whether the resolved value magnitude reaches the press
// threshold.
func (a *Action) Pressed(devs input.Set) bool {
	return math.Abs(a.Value(devs)) >= a.threshold
}
