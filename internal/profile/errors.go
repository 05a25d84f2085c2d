package profile

import (
	"errors"
	"strings"
)

// Sentinel errors for the document decoder. Binding-level semantic
// failures reuse the action package sentinels (action.ErrUnknownDevice
// and friends) so callers can branch on one set of kinds.
var (
	// ErrEmptyDocument indicates a document with no root element.
	ErrEmptyDocument = errors.New("empty document")

	// ErrUnknownElement indicates an element tag the decoder does not
	// recognize.
	ErrUnknownElement = errors.New("unknown element")

	// ErrMissingDevice indicates a binding element without a Device
	// attribute.
	ErrMissingDevice = errors.New("missing Device attribute")

	// ErrMissingName indicates an action element without a name
	// attribute.
	ErrMissingName = errors.New("missing name attribute")

	// ErrInvalidName indicates an action name that sanitizes to the
	// empty string.
	ErrInvalidName = errors.New("invalid action name")

	// ErrMissingThreshold indicates an action element without a
	// threshold attribute.
	ErrMissingThreshold = errors.New("missing threshold attribute")

	// ErrInvalidThreshold indicates a threshold attribute that does
	// not parse as a finite float.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrInvalidBool indicates an Invert attribute that does not
	// parse as a boolean.
	ErrInvalidBool = errors.New("invalid boolean attribute")

	// ErrDuplicateAction indicates two actions sharing one name.
	ErrDuplicateAction = errors.New("duplicate action name")
)

// DecodeError wraps a decoding failure with the document location it
// came from.
type DecodeError struct {
	Path    string // source file, empty for in-memory data
	Element string // element tag, empty for document-level failures
	Attr    string // attribute name, empty when not attribute-specific
	Err     error
}

// Error returns a human-readable description of the failure.
func (e *DecodeError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	if e.Element != "" {
		sb.WriteString("<")
		sb.WriteString(e.Element)
		sb.WriteString(">")
		if e.Attr != "" {
			sb.WriteString(" attribute ")
			sb.WriteString(e.Attr)
		}
		sb.WriteString(": ")
	}
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
