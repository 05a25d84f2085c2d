package input

import (
	"fmt"
	"strings"
)

// Device identifies a physical input device class.
type Device uint8

const (
	// DeviceKeyboard is the keyboard. Keyboards expose buttons only.
	DeviceKeyboard Device = iota
	// DeviceMouse is the mouse, exposing buttons and movement axes.
	DeviceMouse
	// DeviceJoystick is a joystick or gamepad, exposing buttons and axes.
	DeviceJoystick
)

// String returns a human-readable name for the device.
func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceMouse:
		return "Mouse"
	case DeviceJoystick:
		return "Joystick"
	default:
		return fmt.Sprintf("Device(%d)", d)
	}
}

// Valid reports whether the device is one of the supported classes.
func (d Device) Valid() bool {
	switch d {
	case DeviceKeyboard, DeviceMouse, DeviceJoystick:
		return true
	default:
		return false
	}
}

// deviceNameMap maps device names (lowercase) to Device values.
var deviceNameMap = map[string]Device{
	"keyboard": DeviceKeyboard,
	"mouse":    DeviceMouse,
	"joystick": DeviceJoystick,
	"gamepad":  DeviceJoystick,
}

// DeviceFromName returns the Device for a given name (case-insensitive).
func DeviceFromName(name string) (Device, bool) {
	d, ok := deviceNameMap[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Kind identifies how an input produces values.
type Kind uint8

const (
	// KindButton is a momentary input that is either pressed or not.
	KindButton Kind = iota
	// KindAxis is an analog input producing a signed value, nominally
	// in [-1, 1] with zero at rest.
	KindAxis
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "Button"
	case KindAxis:
		return "Axis"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Valid reports whether the kind is button or axis.
func (k Kind) Valid() bool {
	return k == KindButton || k == KindAxis
}

// kindNameMap maps kind names (lowercase) to Kind values.
var kindNameMap = map[string]Kind{
	"button": KindButton,
	"axis":   KindAxis,
}

// KindFromName returns the Kind for a given name (case-insensitive).
func KindFromName(name string) (Kind, bool) {
	k, ok := kindNameMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
