package action

import (
	"strings"

	"github.com/dshills/actionmap/internal/input"
)

// Binding ties one logical direction pair to physical inputs on a device.
// The zero value is a keyboard button binding with no identifiers, which is
// never valid.
type Binding struct {
	// Device selects which backend the identifiers refer to.
	Device input.Device

	// Kind selects whether the identifiers name buttons or an axis.
	Kind input.Kind

	// Positive names the input driving the value toward +1. For axis
	// bindings it names the axis itself.
	Positive string

	// Negative names the input driving the value toward -1. Axis bindings
	// ignore it.
	Negative string

	// Invert flips the resolved sign for axes and swaps the two directions
	// for buttons.
	Invert bool
}

// NewBinding creates a button binding for the given device.
func NewBinding(dev input.Device, positive, negative string) Binding {
	return Binding{
		Device:   dev,
		Kind:     input.KindButton,
		Positive: positive,
		Negative: negative,
	}
}

// NewAxisBinding creates an axis binding reading the named axis.
func NewAxisBinding(dev input.Device, axis string) Binding {
	return Binding{
		Device:   dev,
		Kind:     input.KindAxis,
		Positive: axis,
	}
}

// WithInvert returns a copy of the binding with inversion set.
func (b Binding) WithInvert(invert bool) Binding {
	b.Invert = invert
	return b
}

// Validate checks the binding against the given device backends and returns
// the first violated rule, or nil. Rules are checked in a fixed order:
// device in range, kind in range, at least one identifier, device/kind
// compatibility, then identifier recognition.
func (b Binding) Validate(devs input.Set) error {
	if !b.Device.Valid() {
		return &BindingError{Device: b.Device, Kind: b.Kind, Err: ErrUnknownDevice}
	}
	if !b.Kind.Valid() {
		return &BindingError{Device: b.Device, Kind: b.Kind, Err: ErrUnknownKind}
	}
	if b.Positive == "" && b.Negative == "" {
		return &BindingError{Device: b.Device, Kind: b.Kind, Err: ErrNoIdentifier}
	}

	if b.Device == input.DeviceKeyboard && b.Kind == input.KindAxis {
		return &BindingError{Device: b.Device, Kind: b.Kind, Err: ErrKeyboardAxis}
	}

	if b.Kind == input.KindAxis {
		// Only the positive identifier is read for axes; the negative side
		// is ignored entirely, recognized or not.
		if b.Positive == "" {
			return &BindingError{Device: b.Device, Kind: b.Kind, Err: ErrMissingAxis}
		}
		if !devs.Recognizes(b.Device, input.KindAxis, b.Positive) {
			return &BindingError{Device: b.Device, Kind: b.Kind, Identifier: b.Positive, Err: ErrUnknownIdentifier}
		}
		return nil
	}

	if b.Positive != "" && !devs.Recognizes(b.Device, input.KindButton, b.Positive) {
		return &BindingError{Device: b.Device, Kind: b.Kind, Identifier: b.Positive, Err: ErrUnknownIdentifier}
	}
	if b.Negative != "" && !devs.Recognizes(b.Device, input.KindButton, b.Negative) {
		return &BindingError{Device: b.Device, Kind: b.Kind, Identifier: b.Negative, Err: ErrUnknownIdentifier}
	}
	return nil
}

// IsValid reports whether the binding passes Validate.
func (b Binding) IsValid(devs input.Set) bool {
	return b.Validate(devs) == nil
}

// Value resolves this binding alone: the signed axis reading for axis
// bindings, or +1, -1, or 0 for button bindings. Invalid bindings resolve
// to zero.
func (b Binding) Value(devs input.Set) float64 {
	if !b.IsValid(devs) {
		return 0
	}
	if b.Kind == input.KindAxis {
		return b.axisValue(devs)
	}
	pos, neg := b.buttonState(devs)
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}

// axisValue reads the binding's axis, applying inversion to non-zero
// readings.
func (b Binding) axisValue(devs input.Set) float64 {
	v := devs.Axis(b.Device, b.Positive)
	if v == 0 {
		return 0
	}
	if b.Invert {
		return -v
	}
	return v
}

// buttonState reads the pressed state of both directions, swapped when the
// binding is inverted. Empty identifiers read as unpressed.
func (b Binding) buttonState(devs input.Set) (pos, neg bool) {
	if b.Positive != "" {
		pos = devs.Pressed(b.Device, b.Positive)
	}
	if b.Negative != "" {
		neg = devs.Pressed(b.Device, b.Negative)
	}
	if b.Invert {
		pos, neg = neg, pos
	}
	return pos, neg
}

// Collides reports whether two bindings statically conflict: both valid on
// the same device and kind, with one binding's positive identifier naming
// the other's negative, compared case-insensitively. The check is symmetric
// in its arguments. A binding whose own positive and negative name the same
// input collides with itself; when they differ, Collides(b, b) is false.
func Collides(a, b Binding, devs input.Set) bool {
	if !a.IsValid(devs) || !b.IsValid(devs) {
		return false
	}
	if a.Device != b.Device || a.Kind != b.Kind {
		return false
	}
	return crossMatch(a.Positive, b.Negative) || crossMatch(b.Positive, a.Negative)
}

// crossMatch reports whether a non-empty positive identifier names the
// opposing negative identifier.
func crossMatch(positive, negative string) bool {
	return positive != "" && strings.EqualFold(positive, negative)
}
