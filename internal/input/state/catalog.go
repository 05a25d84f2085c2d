package state

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDeadzone is the axis deadzone applied to catalog layouts that
// do not set one.
const DefaultDeadzone = 0.05

// Layout describes the identifier surface of one joystick model: the
// button and axis names it exposes and the deadzone applied to axis
// samples.
type Layout struct {
	Name     string   `yaml:"name"`
	Buttons  []string `yaml:"buttons"`
	Axes     []string `yaml:"axes"`
	Deadzone float64  `yaml:"deadzone,omitempty"`
}

// Catalog is a named collection of joystick layouts.
type Catalog struct {
	layouts map[string]Layout
}

// catalogFile mirrors the YAML document shape.
type catalogFile struct {
	Layouts []Layout `yaml:"layouts"`
}

// ParseCatalog parses a YAML layout catalog. Layout names are
// normalized to lowercase and must be unique. A missing deadzone
// defaults to DefaultDeadzone; an explicit deadzone must be in [0, 1).
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing layout catalog: %w", err)
	}

	cat := &Catalog{layouts: make(map[string]Layout, len(file.Layouts))}
	for i, l := range file.Layouts {
		l.Name = strings.ToLower(strings.TrimSpace(l.Name))
		if l.Name == "" {
			return nil, fmt.Errorf("layout %d: missing name", i)
		}
		if _, dup := cat.layouts[l.Name]; dup {
			return nil, fmt.Errorf("layout %q: duplicate name", l.Name)
		}
		if l.Deadzone == 0 {
			l.Deadzone = DefaultDeadzone
		}
		if l.Deadzone < 0 || l.Deadzone >= 1 {
			return nil, fmt.Errorf("layout %q: deadzone %g out of range [0, 1)", l.Name, l.Deadzone)
		}
		cat.layouts[l.Name] = l
	}
	return cat, nil
}

// LoadCatalog reads and parses a layout catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout catalog: %w", err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Layout returns the named layout (case-insensitive). The second
// result reports whether it exists.
func (c *Catalog) Layout(name string) (Layout, bool) {
	l, ok := c.layouts[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// Names returns the catalog's layout names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.layouts))
	for n := range c.layouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of layouts in the catalog.
func (c *Catalog) Len() int {
	return len(c.layouts)
}

// DefaultCatalog returns the built-in layouts for common controllers.
func DefaultCatalog() *Catalog {
	layouts := []Layout{
		{
			Name: "xbox",
			Buttons: []string{
				"a", "b", "x", "y",
				"lb", "rb",
				"select", "start", "home",
				"l3", "r3",
				"dpad_up", "dpad_down", "dpad_left", "dpad_right",
			},
			Axes: []string{
				"left_x", "left_y", "right_x", "right_y",
				"lt", "rt",
			},
			Deadzone: DefaultDeadzone,
		},
		{
			Name: "playstation",
			Buttons: []string{
				"cross", "circle", "square", "triangle",
				"l1", "r1",
				"share", "options", "ps",
				"l3", "r3",
				"dpad_up", "dpad_down", "dpad_left", "dpad_right",
			},
			Axes: []string{
				"left_x", "left_y", "right_x", "right_y",
				"l2", "r2",
			},
			Deadzone: DefaultDeadzone,
		},
		{
			// Switch Pro reports its triggers as buttons, not axes.
			Name: "switch_pro",
			Buttons: []string{
				"a", "b", "x", "y",
				"l", "r", "zl", "zr",
				"minus", "plus", "home", "capture",
				"l3", "r3",
				"dpad_up", "dpad_down", "dpad_left", "dpad_right",
			},
			Axes: []string{
				"left_x", "left_y", "right_x", "right_y",
			},
			Deadzone: DefaultDeadzone,
		},
		{
			Name: "generic",
			Buttons: []string{
				"a", "b", "x", "y",
				"lb", "rb",
				"select", "start",
				"l3", "r3",
			},
			Axes: []string{
				"left_x", "left_y", "right_x", "right_y",
			},
			Deadzone: DefaultDeadzone,
		},
	}

	cat := &Catalog{layouts: make(map[string]Layout, len(layouts))}
	for _, l := range layouts {
		cat.layouts[l.Name] = l
	}
	return cat
}
