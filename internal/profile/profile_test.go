package profile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/actionmap/internal/action"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/state"
)

func TestProfileAddGetRemove(t *testing.T) {
	p := New()

	jump := action.New("Jump")
	if err := p.Add(jump); err != nil {
		t.Fatalf("Add(Jump) error = %v", err)
	}
	if err := p.Add(action.New("Fire")); err != nil {
		t.Fatalf("Add(Fire) error = %v", err)
	}

	if got := p.Get("Jump"); got != jump {
		t.Error("Get(Jump) did not return the added action")
	}
	if p.Get("Crouch") != nil {
		t.Error("Get(Crouch) = non-nil for absent action")
	}

	if err := p.Add(action.New("Jump")); !errors.Is(err, ErrDuplicateAction) {
		t.Errorf("Add(duplicate) error = %v, want %v", err, ErrDuplicateAction)
	}
	if err := p.Add(action.New("   ")); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Add(invalid) error = %v, want %v", err, ErrInvalidName)
	}
	if err := p.Add(nil); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Add(nil) error = %v, want %v", err, ErrInvalidName)
	}

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}

	if !p.Remove("Jump") {
		t.Error("Remove(Jump) = false")
	}
	if p.Remove("Jump") {
		t.Error("Remove(Jump) = true on second call")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d after Remove, want 1", p.Len())
	}
}

func TestProfileNamesOrder(t *testing.T) {
	p := New()
	for _, n := range []string{"Zeta", "Alpha", "Mid"} {
		if err := p.Add(action.New(n)); err != nil {
			t.Fatalf("Add(%s) error = %v", n, err)
		}
	}

	got := p.Names()
	want := []string{"Zeta", "Alpha", "Mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestProfileValuePressed(t *testing.T) {
	devs := testDevices()
	kb := devs.Keyboard.(*state.Keyboard)

	p := New()
	jump := action.New("Jump")
	jump.Add(action.NewBinding(input.DeviceKeyboard, "space", ""))
	if err := p.Add(jump); err != nil {
		t.Fatalf("Add(Jump) error = %v", err)
	}

	if got := p.Value("Jump", devs); got != 0 {
		t.Errorf("Value(Jump) = %v with nothing pressed, want 0", got)
	}

	kb.Press("space")
	if got := p.Value("Jump", devs); got != 1 {
		t.Errorf("Value(Jump) = %v with space held, want 1", got)
	}
	if !p.Pressed("Jump", devs) {
		t.Error("Pressed(Jump) = false with space held")
	}

	if got := p.Value("Missing", devs); got != 0 {
		t.Errorf("Value(Missing) = %v, want 0", got)
	}
	if p.Pressed("Missing", devs) {
		t.Error("Pressed(Missing) = true")
	}
}

func TestProfileClone(t *testing.T) {
	p := New()
	jump := action.New("Jump")
	jump.Add(action.NewBinding(input.DeviceKeyboard, "space", ""))
	if err := p.Add(jump); err != nil {
		t.Fatalf("Add(Jump) error = %v", err)
	}

	clone := p.Clone()

	jump.SetPressThreshold(0.9)
	jump.Add(action.NewBinding(input.DeviceKeyboard, "w", ""))

	ca := clone.Get("Jump")
	if ca == nil {
		t.Fatal("clone lost action Jump")
	}
	if ca.PressThreshold() != action.DefaultPressThreshold {
		t.Errorf("clone threshold = %v, want %v", ca.PressThreshold(), action.DefaultPressThreshold)
	}
	if ca.Len() != 1 {
		t.Errorf("clone has %d bindings, want 1", ca.Len())
	}
}

func TestProfileCollisions(t *testing.T) {
	devs := testDevices()

	p := New()

	fwd := action.New("Forward")
	fwd.Add(action.NewBinding(input.DeviceKeyboard, "w", ""))
	if err := p.Add(fwd); err != nil {
		t.Fatalf("Add(Forward) error = %v", err)
	}

	back := action.New("Back")
	back.Add(action.NewBinding(input.DeviceKeyboard, "", "w"))
	if err := p.Add(back); err != nil {
		t.Fatalf("Add(Back) error = %v", err)
	}

	cols := p.Collisions(devs)
	if len(cols) != 1 {
		t.Fatalf("Collisions() = %v, want exactly one", cols)
	}
	c := cols[0]
	if c.ActionA != "Forward" || c.ActionB != "Back" {
		t.Errorf("collision pair = %s/%s, want Forward/Back", c.ActionA, c.ActionB)
	}
}

func TestProfileCollisionsSelfPair(t *testing.T) {
	devs := testDevices()

	p := New()
	odd := action.New("Odd")
	odd.Add(action.Binding{Device: input.DeviceKeyboard, Kind: input.KindButton, Positive: "w", Negative: "w"})
	if err := p.Add(odd); err != nil {
		t.Fatalf("Add(Odd) error = %v", err)
	}

	cols := p.Collisions(devs)
	if len(cols) != 1 {
		t.Fatalf("Collisions() = %v, want the self pair", cols)
	}
	if cols[0].ActionA != "Odd" || cols[0].ActionB != "Odd" || cols[0].IndexA != 0 || cols[0].IndexB != 0 {
		t.Errorf("collision = %+v, want Odd[0] against itself", cols[0])
	}
}

func TestProfileCollisionsNone(t *testing.T) {
	devs := testDevices()

	p := New()
	a := action.New("A")
	a.Add(action.NewBinding(input.DeviceKeyboard, "w", "s"))
	b := action.New("B")
	b.Add(action.NewBinding(input.DeviceKeyboard, "w", "s"))
	if err := p.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(b); err != nil {
		t.Fatal(err)
	}

	// Identical bindings do not collide; only crossed identifiers do.
	if cols := p.Collisions(devs); len(cols) != 0 {
		t.Errorf("Collisions() = %v, want none", cols)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	devs := testDevices()
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.xml")

	data := []byte(`<actions>
	<action name="Jump" threshold="0.5">
		<Button Device="Keyboard" Positive="space" Negative="" Invert="false"/>
	</action>
</actions>`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	loader := NewLoader(devs, nil)
	p, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if p.Len() != 1 || p.Get("Jump") == nil {
		t.Errorf("loaded profile missing Jump action")
	}
}

func TestLoaderLoadFileMissing(t *testing.T) {
	loader := NewLoader(testDevices(), nil)
	if _, err := loader.LoadFile(filepath.Join(t.TempDir(), "absent.xml")); err == nil {
		t.Error("LoadFile(absent) error = nil, want error")
	}
}

func TestProfileSaveFileLoadFileRoundTrip(t *testing.T) {
	devs := testDevices()
	p := New()
	jump := action.New("Jump")
	jump.SetPressThreshold(0.25)
	jump.Add(action.Binding{Device: input.DeviceKeyboard, Kind: input.KindButton, Positive: "space"})
	if err := p.Add(jump); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "saved.xml")
	if err := p.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	loaded, err := NewLoader(devs, nil).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	got := loaded.Get("Jump")
	if got == nil {
		t.Fatal("loaded profile missing Jump action")
	}
	if got.PressThreshold() != 0.25 {
		t.Errorf("PressThreshold() = %v, want 0.25", got.PressThreshold())
	}
}

func TestProfileWriteTo(t *testing.T) {
	p := New()
	p.Add(action.New("Fire"))

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if want := p.Encode(); !bytes.Equal(buf.Bytes(), want) || n != int64(len(want)) {
		t.Errorf("WriteTo() wrote %d bytes %q, want %d bytes %q", n, buf.Bytes(), len(want), want)
	}
}

func TestLoaderLoadFileBadContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.xml")
	if err := os.WriteFile(path, []byte(`<actions><action name="Jump"/></actions>`), 0644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	loader := NewLoader(testDevices(), nil)
	_, err := loader.LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() error = nil, want error")
	}
	if !errors.Is(err, ErrMissingThreshold) {
		t.Errorf("LoadFile() error = %v, want kind %v", err, ErrMissingThreshold)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("LoadFile() error %q does not mention path %q", err, path)
	}
}
