package input

// Keyboard is the capability surface of a keyboard backend.
type Keyboard interface {
	// IsKey reports whether the identifier names a key this keyboard knows.
	IsKey(id string) bool
	// Pressed reports whether the named key is currently held.
	Pressed(id string) bool
}

// Mouse is the capability surface of a mouse backend.
type Mouse interface {
	// IsButton reports whether the identifier names a mouse button.
	IsButton(id string) bool
	// IsAxis reports whether the identifier names a mouse axis.
	IsAxis(id string) bool
	// Pressed reports whether the named button is currently held.
	Pressed(id string) bool
	// Axis returns the current signed value of the named axis.
	Axis(id string) float64
}

// Joystick is the capability surface of a joystick backend. The method set
// matches Mouse; the distinct name keeps Set fields self-describing.
type Joystick interface {
	IsButton(id string) bool
	IsAxis(id string) bool
	Pressed(id string) bool
	Axis(id string) float64
}

// Set bundles the device backends consulted during binding validation and
// resolution. Any field may be nil; queries against a nil backend report
// that nothing is recognized, pressed, or deflected.
type Set struct {
	Keyboard Keyboard
	Mouse    Mouse
	Joystick Joystick
}

// Recognizes reports whether the identifier names a known input of the
// given device and kind. Keyboards recognize button identifiers only.
func (s Set) Recognizes(dev Device, kind Kind, id string) bool {
	switch dev {
	case DeviceKeyboard:
		return kind == KindButton && s.Keyboard != nil && s.Keyboard.IsKey(id)
	case DeviceMouse:
		if s.Mouse == nil {
			return false
		}
		if kind == KindAxis {
			return s.Mouse.IsAxis(id)
		}
		return s.Mouse.IsButton(id)
	case DeviceJoystick:
		if s.Joystick == nil {
			return false
		}
		if kind == KindAxis {
			return s.Joystick.IsAxis(id)
		}
		return s.Joystick.IsButton(id)
	default:
		return false
	}
}

// Pressed reports whether the identifier is currently held on the device.
func (s Set) Pressed(dev Device, id string) bool {
	switch dev {
	case DeviceKeyboard:
		return s.Keyboard != nil && s.Keyboard.Pressed(id)
	case DeviceMouse:
		return s.Mouse != nil && s.Mouse.Pressed(id)
	case DeviceJoystick:
		return s.Joystick != nil && s.Joystick.Pressed(id)
	default:
		return false
	}
}

// Axis returns the current value of the named axis on the device, or zero
// when the device carries no axes or is absent.
func (s Set) Axis(dev Device, id string) float64 {
	switch dev {
	case DeviceMouse:
		if s.Mouse == nil {
			return 0
		}
		return s.Mouse.Axis(id)
	case DeviceJoystick:
		if s.Joystick == nil {
			return 0
		}
		return s.Joystick.Axis(id)
	default:
		return 0
	}
}
