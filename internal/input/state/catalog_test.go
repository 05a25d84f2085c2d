package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	data := []byte(`layouts:
  - name: Arcade
    buttons: [punch, kick, start]
    axes: [stick_x, stick_y]
    deadzone: 0.2
  - name: minimal
    buttons: [fire]
    axes: [throttle]
`)

	cat, err := ParseCatalog(data)
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}

	arcade, ok := cat.Layout("arcade")
	if !ok {
		t.Fatal("Layout(arcade) not found; names should be lowercased")
	}
	if arcade.Deadzone != 0.2 {
		t.Errorf("arcade deadzone = %v, want 0.2", arcade.Deadzone)
	}
	if len(arcade.Buttons) != 3 || arcade.Buttons[0] != "punch" {
		t.Errorf("arcade buttons = %v", arcade.Buttons)
	}

	minimal, ok := cat.Layout("MINIMAL")
	if !ok {
		t.Fatal("Layout(MINIMAL) not found")
	}
	if minimal.Deadzone != DefaultDeadzone {
		t.Errorf("unset deadzone = %v, want default %v", minimal.Deadzone, DefaultDeadzone)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{
			name:    "malformed yaml",
			data:    "layouts: [}",
			wantSub: "parsing layout catalog",
		},
		{
			name: "missing name",
			data: `layouts:
  - buttons: [a]
    axes: [x]
`,
			wantSub: "missing name",
		},
		{
			name: "duplicate name",
			data: `layouts:
  - name: pad
    buttons: [a]
  - name: PAD
    buttons: [b]
`,
			wantSub: "duplicate name",
		},
		{
			name: "deadzone too large",
			data: `layouts:
  - name: pad
    buttons: [a]
    deadzone: 1.0
`,
			wantSub: "deadzone",
		},
		{
			name: "negative deadzone",
			data: `layouts:
  - name: pad
    buttons: [a]
    deadzone: -0.1
`,
			wantSub: "deadzone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseCatalog() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layouts.yaml")
	data := []byte(`layouts:
  - name: pad
    buttons: [a, b]
    axes: [x]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if _, ok := cat.Layout("pad"); !ok {
		t.Error("Layout(pad) not found after LoadCatalog")
	}

	if _, err := LoadCatalog(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("LoadCatalog(absent) error = nil, want error")
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()

	want := []string{"generic", "playstation", "switch_pro", "xbox"}
	got := cat.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}

	xbox, ok := cat.Layout("xbox")
	if !ok {
		t.Fatal("xbox layout missing")
	}
	j := NewJoystick(xbox)
	if !j.IsButton("a") || !j.IsButton("dpad_up") {
		t.Error("xbox layout missing expected buttons")
	}
	if !j.IsAxis("left_x") || !j.IsAxis("rt") {
		t.Error("xbox layout missing expected axes")
	}

	sw, ok := cat.Layout("switch_pro")
	if !ok {
		t.Fatal("switch_pro layout missing")
	}
	if NewJoystick(sw).IsAxis("rt") {
		t.Error("switch_pro should not expose trigger axes")
	}
}
