// Package input defines the device vocabulary shared by the action mapping
// system: which devices exist, what kinds of inputs they expose, and the
// capability surface a device backend must implement.
//
// # Key Concepts
//
// Device: The closed set of supported input devices (keyboard, mouse,
// joystick). Values outside the set are representable but never valid.
//
// Kind: Whether an identifier names a button-like input (pressed or not)
// or an axis (a signed analog value).
//
// Set: A bundle of device backends consulted during binding validation and
// resolution. Any backend may be nil; a nil backend recognizes no
// identifiers and reports neutral state, so bindings against an absent
// device fail validation and resolve inert rather than panicking.
//
// # Identifiers
//
// Inputs are addressed by string identifiers ("w", "left", "x"). Backends
// decide which identifiers they recognize; the reference implementations in
// the state subpackage match identifiers case-insensitively while callers'
// spellings are preserved verbatim everywhere else.
package input
