package action

import (
	"errors"
	"fmt"

	"github.com/dshills/actionmap/internal/input"
)

// Errors returned by binding validation. Each names one violated rule so
// callers can distinguish them with errors.Is.
var (
	// ErrUnknownDevice indicates the binding's device is outside the
	// supported set.
	ErrUnknownDevice = errors.New("unknown device")

	// ErrUnknownKind indicates the binding's kind is neither button nor axis.
	ErrUnknownKind = errors.New("unknown input kind")

	// ErrNoIdentifier indicates the binding names neither a positive nor a
	// negative input.
	ErrNoIdentifier = errors.New("no input identifier")

	// ErrKeyboardAxis indicates an axis binding targeting the keyboard,
	// which exposes buttons only.
	ErrKeyboardAxis = errors.New("keyboard does not expose axes")

	// ErrMissingAxis indicates an axis binding without a positive
	// identifier to read.
	ErrMissingAxis = errors.New("axis binding requires a positive identifier")

	// ErrUnknownIdentifier indicates an identifier the device backend does
	// not recognize.
	ErrUnknownIdentifier = errors.New("identifier not recognized by device")
)

// BindingError describes why a binding failed validation.
type BindingError struct {
	// Device is the binding's device.
	Device input.Device
	// Kind is the binding's kind.
	Kind input.Kind
	// Identifier is the offending identifier, when one is involved.
	Identifier string
	// Err is the violated rule, one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("%s %s binding: %v: %q", e.Device, e.Kind, e.Err, e.Identifier)
	}
	return fmt.Sprintf("%s %s binding: %v", e.Device, e.Kind, e.Err)
}

// Unwrap returns the violated rule.
func (e *BindingError) Unwrap() error {
	return e.Err
}
