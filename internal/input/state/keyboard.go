// Package state provides in-memory device backends implementing the
// input capability interfaces. Each backend holds the most recently
// sampled state of one device. Feed methods (Press, Release, SetAxis)
// record samples; the capability methods answer identifier and value
// queries during action resolution.
package state

import (
	"fmt"
	"strings"

	"github.com/dshills/actionmap/internal/input"
)

// keyNames maps key names (lowercase) to their canonical form.
// Letters, digits, and function keys are added by init.
var keyNames = map[string]string{
	"escape":      "escape",
	"esc":         "escape",
	"enter":       "enter",
	"return":      "enter",
	"cr":          "enter",
	"tab":         "tab",
	"backspace":   "backspace",
	"bs":          "backspace",
	"delete":      "delete",
	"del":         "delete",
	"insert":      "insert",
	"ins":         "insert",
	"home":        "home",
	"end":         "end",
	"pageup":      "pageup",
	"pgup":        "pageup",
	"pagedown":    "pagedown",
	"pgdn":        "pagedown",
	"up":          "up",
	"down":        "down",
	"left":        "left",
	"right":       "right",
	"space":       "space",
	"lshift":      "lshift",
	"rshift":      "rshift",
	"lctrl":       "lctrl",
	"rctrl":       "rctrl",
	"lalt":        "lalt",
	"ralt":        "ralt",
	"pause":       "pause",
	"printscreen": "printscreen",
	"scrolllock":  "scrolllock",
	"numlock":     "numlock",
	"capslock":    "capslock",
}

func init() {
	for r := 'a'; r <= 'z'; r++ {
		s := string(r)
		keyNames[s] = s
	}
	for r := '0'; r <= '9'; r++ {
		s := string(r)
		keyNames[s] = s
	}
	for i := 1; i <= 12; i++ {
		s := fmt.Sprintf("f%d", i)
		keyNames[s] = s
	}
}

// CanonicalKey returns the canonical form of a key name
// (case-insensitive, aliases resolved). The second result reports
// whether the name is recognized.
func CanonicalKey(name string) (string, bool) {
	n, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return n, ok
}

// Keyboard is an in-memory keyboard backend.
type Keyboard struct {
	held map[string]bool
}

// NewKeyboard returns a keyboard backend with no keys held.
func NewKeyboard() *Keyboard {
	return &Keyboard{held: make(map[string]bool)}
}

// IsKey reports whether name refers to a key this backend recognizes.
func (k *Keyboard) IsKey(name string) bool {
	_, ok := CanonicalKey(name)
	return ok
}

// Pressed reports whether the named key is currently held.
func (k *Keyboard) Pressed(name string) bool {
	n, ok := CanonicalKey(name)
	if !ok {
		return false
	}
	return k.held[n]
}

// Press records the named key as held. Unrecognized names are ignored.
func (k *Keyboard) Press(name string) {
	if n, ok := CanonicalKey(name); ok {
		k.held[n] = true
	}
}

// Release records the named key as no longer held.
func (k *Keyboard) Release(name string) {
	if n, ok := CanonicalKey(name); ok {
		delete(k.held, n)
	}
}

// Held returns the canonical names of all currently held keys.
func (k *Keyboard) Held() []string {
	names := make([]string, 0, len(k.held))
	for n := range k.held {
		names = append(names, n)
	}
	return names
}

// Reset releases all held keys.
func (k *Keyboard) Reset() {
	clear(k.held)
}

var _ input.Keyboard = (*Keyboard)(nil)
