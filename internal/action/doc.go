// Package action maps named logical actions onto physical device inputs.
//
// The action system decouples gameplay or application intent ("Jump",
// "MoveRight") from the concrete keys, buttons, and axes that drive it.
// Each action owns an ordered list of bindings and resolves to a single
// signed value and a pressed state every time it is polled.
//
// # Key Concepts
//
// Binding: One device input pair. A button binding names a positive and an
// optional negative button (or the reverse); an axis binding names a single
// axis. Bindings validate against the live device backends and can be
// checked pairwise for collisions.
//
// Action: A sanitized name, a press threshold, and the ordered bindings.
// Resolution walks the bindings in order; the first non-centered axis wins,
// otherwise button presses combine into +1, -1, or 0.
//
// # Resolution Policy
//
// Resolution never fails. Bindings that do not validate against the current
// device set are skipped silently, so an action referencing an unplugged
// joystick simply ignores those bindings until the device appears. Load-time
// validation is where problems are surfaced; see the profile package.
//
// # Usage
//
//	jump := action.New("Jump").
//	    Add(action.NewBinding(input.DeviceKeyboard, "space", ""))
//
//	if jump.Pressed(devs) {
//	    // ...
//	}
package action
