package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePressed = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// render redraws the inspector screen.
func (a *Application) render() {
	if a.screen == nil {
		return
	}
	s := a.screen
	s.Clear()

	row := 0
	drawText(s, 0, row, styleTitle, fmt.Sprintf("actionmap %s  %s  layout=%s",
		shortID(a.session), a.cfg.Profile.Path, a.joystick.Layout().Name))
	row += 2

	drawText(s, 0, row, styleDim, fmt.Sprintf("%-20s %8s  %s", "ACTION", "VALUE", "STATE"))
	row++
	for _, act := range a.prof.Actions() {
		v := act.Value(a.devs)
		line := fmt.Sprintf("%-20s %8.2f  ", act.Name(), v)
		style := styleDefault
		if act.Pressed(a.devs) {
			line += "pressed"
			style = stylePressed
		}
		drawText(s, 0, row, style, line)
		drawBar(s, 32, row, v)
		row++
	}
	row++

	if cols := a.prof.Collisions(a.devs); len(cols) > 0 {
		drawText(s, 0, row, styleWarn, fmt.Sprintf("collisions (%d):", len(cols)))
		row++
		for _, c := range cols {
			drawText(s, 2, row, styleWarn, fmt.Sprintf("%s[%d] x %s[%d]",
				c.ActionA, c.IndexA, c.ActionB, c.IndexB))
			row++
		}
		row++
	}

	if len(a.recent) > 0 {
		drawText(s, 0, row, styleDim, "recent events:")
		row++
		for _, line := range a.recent {
			drawText(s, 2, row, styleDefault, line)
			row++
		}
		row++
	}

	if a.status != "" {
		drawText(s, 0, row, styleWarn, a.status)
		row++
	}

	_, h := s.Size()
	drawText(s, 0, h-1, styleDim, "ctrl+c quit  (keys, mouse, and wheel feed the bindings)")

	s.Show()
}

// drawText writes a string starting at column x on row y.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

// drawBar renders a signed value as a small centered bar.
func drawBar(s tcell.Screen, x, y int, v float64) {
	const half = 10
	for i := -half; i <= half; i++ {
		r := '·'
		switch {
		case i == 0:
			r = '|'
		case i < 0 && v < 0 && float64(i) >= v*half:
			r = '='
		case i > 0 && v > 0 && float64(i) <= v*half:
			r = '='
		}
		s.SetContent(x+half+i, y, r, nil, styleDim)
	}
}
