package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// keyName maps a terminal key event to a keyboard backend identifier.
// Unmapped keys return "".
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return strings.ToLower(string(r))
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyInsert:
		return "insert"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyPgUp:
		return "pageup"
	case tcell.KeyPgDn:
		return "pagedown"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyF1:
		return "f1"
	case tcell.KeyF2:
		return "f2"
	case tcell.KeyF3:
		return "f3"
	case tcell.KeyF4:
		return "f4"
	case tcell.KeyF5:
		return "f5"
	case tcell.KeyF6:
		return "f6"
	case tcell.KeyF7:
		return "f7"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyF9:
		return "f9"
	case tcell.KeyF10:
		return "f10"
	case tcell.KeyF11:
		return "f11"
	case tcell.KeyF12:
		return "f12"
	default:
		return ""
	}
}

// buttonTable maps tcell button bits to mouse backend identifiers.
var buttonTable = []struct {
	mask tcell.ButtonMask
	name string
}{
	{tcell.ButtonPrimary, "left"},
	{tcell.ButtonSecondary, "right"},
	{tcell.ButtonMiddle, "middle"},
	{tcell.Button4, "x1"},
	{tcell.Button5, "x2"},
}

// normalize maps a screen coordinate to [-1, 1] with 0 at the center.
func normalize(pos, size int) float64 {
	if size <= 1 {
		return 0
	}
	v := 2*float64(pos)/float64(size-1) - 1
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
