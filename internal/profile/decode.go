package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/dshills/actionmap/internal/action"
	"github.com/dshills/actionmap/internal/input"
)

// findAttr returns the value of the named attribute, matched
// case-insensitively. The second result reports whether the attribute
// exists.
func findAttr(el *etree.Element, name string) (string, bool) {
	for _, a := range el.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Value, true
		}
	}
	return "", false
}

// attrOr returns the named attribute's value, or "" when the attribute
// is absent or blank. Non-blank values are preserved verbatim.
func attrOr(el *etree.Element, name string) string {
	v, ok := findAttr(el, name)
	if !ok || strings.TrimSpace(v) == "" {
		return ""
	}
	return v
}

// DecodeBinding decodes a button or axis element into a Binding. The
// element tag fixes the kind. The Device attribute is required. The
// positive identifier comes from the Value attribute, or from the
// legacy Positive attribute when Value is absent or blank. The decoded
// binding is re-validated against devs; any violation fails the
// decode with the corresponding action sentinel as the error kind.
func DecodeBinding(el *etree.Element, devs input.Set) (action.Binding, error) {
	var kind input.Kind
	switch {
	case strings.EqualFold(el.Tag, "button"):
		kind = input.KindButton
	case strings.EqualFold(el.Tag, "axis"):
		kind = input.KindAxis
	default:
		return action.Binding{}, &DecodeError{Element: el.Tag, Err: ErrUnknownElement}
	}

	devName, ok := findAttr(el, "device")
	if !ok {
		return action.Binding{}, &DecodeError{Element: el.Tag, Attr: "Device", Err: ErrMissingDevice}
	}
	dev, ok := input.DeviceFromName(devName)
	if !ok {
		return action.Binding{}, &DecodeError{
			Element: el.Tag,
			Attr:    "Device",
			Err:     fmt.Errorf("%w: %q", action.ErrUnknownDevice, devName),
		}
	}

	positive := attrOr(el, "value")
	if positive == "" {
		positive = attrOr(el, "positive")
	}
	negative := attrOr(el, "negative")

	b := action.Binding{Device: dev, Kind: kind, Positive: positive, Negative: negative}

	if raw, ok := findAttr(el, "invert"); ok {
		inv, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return action.Binding{}, &DecodeError{
				Element: el.Tag,
				Attr:    "Invert",
				Err:     fmt.Errorf("%w: %q", ErrInvalidBool, raw),
			}
		}
		b.Invert = inv
	}

	if err := b.Validate(devs); err != nil {
		return action.Binding{}, &DecodeError{Element: el.Tag, Err: err}
	}
	return b, nil
}

// DecodeAction decodes an action element and its child bindings.
// Children are decoded in document order; any child failure aborts the
// whole action so callers never see a partially built one.
func DecodeAction(el *etree.Element, devs input.Set) (*action.Action, error) {
	if !strings.EqualFold(el.Tag, "action") {
		return nil, &DecodeError{Element: el.Tag, Err: ErrUnknownElement}
	}

	rawName, ok := findAttr(el, "name")
	if !ok {
		return nil, &DecodeError{Element: el.Tag, Attr: "name", Err: ErrMissingName}
	}
	act := action.New(rawName)
	if !act.IsValid() {
		return nil, &DecodeError{
			Element: el.Tag,
			Attr:    "name",
			Err:     fmt.Errorf("%w: %q", ErrInvalidName, rawName),
		}
	}

	rawThreshold, ok := findAttr(el, "threshold")
	if !ok {
		return nil, &DecodeError{Element: el.Tag, Attr: "threshold", Err: ErrMissingThreshold}
	}
	threshold, err := strconv.ParseFloat(strings.TrimSpace(rawThreshold), 64)
	if err != nil || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, &DecodeError{
			Element: el.Tag,
			Attr:    "threshold",
			Err:     fmt.Errorf("%w: %q", ErrInvalidThreshold, rawThreshold),
		}
	}
	act.SetPressThreshold(threshold)

	for _, child := range el.ChildElements() {
		b, err := DecodeBinding(child, devs)
		if err != nil {
			return nil, err
		}
		act.Add(b)
	}
	return act, nil
}

// Parse decodes a complete actions document into a Profile. Any
// failure aborts the whole load; no partial profile is returned.
func Parse(data []byte, devs input.Set) (*Profile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &DecodeError{Err: ErrEmptyDocument}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("malformed document: %w", err)}
	}

	root := doc.Root()
	if root == nil {
		return nil, &DecodeError{Err: ErrEmptyDocument}
	}
	if !strings.EqualFold(root.Tag, "actions") {
		return nil, &DecodeError{Element: root.Tag, Err: ErrUnknownElement}
	}

	p := New()
	for _, child := range root.ChildElements() {
		act, err := DecodeAction(child, devs)
		if err != nil {
			return nil, err
		}
		if err := p.Add(act); err != nil {
			return nil, &DecodeError{Element: child.Tag, Attr: "name", Err: err}
		}
	}
	return p, nil
}
