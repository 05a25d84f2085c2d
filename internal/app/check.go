package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/actionmap/internal/action"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/state"
	"github.com/dshills/actionmap/internal/logging"
	"github.com/dshills/actionmap/internal/profile"
)

// Check loads the configured profile once and writes a validation
// report to w. The returned count is the number of problems found,
// one per colliding binding pair. Failing to load the profile at all
// is returned as an error.
func Check(opts Options, w io.Writer) (int, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return 0, err
	}

	layout, err := resolveLayout(cfg.Joystick)
	if err != nil {
		return 0, err
	}

	devs := input.Set{
		Keyboard: state.NewKeyboard(),
		Mouse:    state.NewMouse(),
		Joystick: state.NewJoystick(layout),
	}

	loader := profile.NewLoader(devs, logging.NullLogger)
	prof, err := loader.LoadFile(cfg.Profile.Path)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "profile: %s\n", cfg.Profile.Path)
	fmt.Fprintf(w, "layout:  %s\n", layout.Name)
	fmt.Fprintf(w, "actions: %d\n", prof.Len())
	for _, act := range prof.Actions() {
		fmt.Fprintf(w, "  %-20s threshold=%g\n", act.Name(), act.PressThreshold())
		for i, b := range act.Bindings() {
			fmt.Fprintf(w, "    [%d] %s\n", i, describeBinding(b))
		}
	}

	cols := prof.Collisions(devs)
	if len(cols) == 0 {
		fmt.Fprintln(w, "no collisions")
	}
	for _, c := range cols {
		fmt.Fprintf(w, "collision: %s[%d] x %s[%d]\n", c.ActionA, c.IndexA, c.ActionB, c.IndexB)
	}

	return len(cols), nil
}

// describeBinding renders one binding for the report.
func describeBinding(b action.Binding) string {
	var sb strings.Builder
	sb.WriteString(b.Device.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Kind.String())
	if b.Kind == input.KindAxis {
		sb.WriteByte(' ')
		sb.WriteString(b.Positive)
	} else {
		if b.Positive != "" {
			sb.WriteString(" +")
			sb.WriteString(b.Positive)
		}
		if b.Negative != "" {
			sb.WriteString(" -")
			sb.WriteString(b.Negative)
		}
	}
	if b.Invert {
		sb.WriteString(" inverted")
	}
	return sb.String()
}
