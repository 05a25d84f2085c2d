package trigger

import (
	"testing"

	"github.com/dshills/actionmap/internal/action"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/state"
	"github.com/dshills/actionmap/internal/profile"
)

func testDevices() (input.Set, *state.Keyboard, *state.Joystick) {
	kb := state.NewKeyboard()
	joy := state.NewJoystick(state.Layout{
		Name:    "test",
		Buttons: []string{"a", "b"},
		Axes:    []string{"left_x", "left_y"},
	})
	return input.Set{Keyboard: kb, Mouse: state.NewMouse(), Joystick: joy}, kb, joy
}

func testProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p := profile.New()

	jump := action.New("Jump")
	jump.Add(action.NewBinding(input.DeviceKeyboard, "space", ""))
	if err := p.Add(jump); err != nil {
		t.Fatalf("Add(Jump): %v", err)
	}

	move := action.New("MoveX")
	move.Add(action.NewAxisBinding(input.DeviceJoystick, "left_x"))
	if err := p.Add(move); err != nil {
		t.Fatalf("Add(MoveX): %v", err)
	}

	return p
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventPressed, "Pressed"},
		{EventReleased, "Released"},
		{EventValueChanged, "ValueChanged"},
		{EventType(9), "EventType(9)"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMonitorPressEdges(t *testing.T) {
	devs, kb, _ := testDevices()
	m := NewMonitor(testProfile(t))

	if events := m.Poll(devs); len(events) != 0 {
		t.Fatalf("idle first poll emitted %v", events)
	}

	kb.Press("space")
	events := m.Poll(devs)
	if len(events) != 2 {
		t.Fatalf("press poll emitted %v, want value change and press", events)
	}
	if events[0].Type != EventValueChanged || events[0].Action != "Jump" {
		t.Errorf("events[0] = %+v, want Jump ValueChanged", events[0])
	}
	if events[1].Type != EventPressed || events[1].Value != 1 || events[1].Previous != 0 {
		t.Errorf("events[1] = %+v, want Jump Pressed 0->1", events[1])
	}

	if events := m.Poll(devs); len(events) != 0 {
		t.Fatalf("held poll emitted %v, want none", events)
	}

	kb.Release("space")
	events = m.Poll(devs)
	if len(events) != 2 {
		t.Fatalf("release poll emitted %v, want value change and release", events)
	}
	if events[1].Type != EventReleased || events[1].Previous != 1 {
		t.Errorf("events[1] = %+v, want Jump Released", events[1])
	}
}

func TestMonitorEpsilon(t *testing.T) {
	devs, _, joy := testDevices()
	m := NewMonitor(testProfile(t))

	joy.SetAxis("left_x", 0.5)
	events := m.Poll(devs)
	if len(events) != 2 {
		t.Fatalf("deflection poll emitted %v, want change and press", events)
	}

	// A wiggle below the epsilon is not a change.
	joy.SetAxis("left_x", 0.5004)
	if events := m.Poll(devs); len(events) != 0 {
		t.Fatalf("sub-epsilon poll emitted %v, want none", events)
	}

	joy.SetAxis("left_x", 0.6)
	events = m.Poll(devs)
	if len(events) != 1 || events[0].Type != EventValueChanged {
		t.Fatalf("movement poll emitted %v, want one value change", events)
	}
}

func TestMonitorWithEpsilon(t *testing.T) {
	devs, _, joy := testDevices()
	m := NewMonitor(testProfile(t), WithEpsilon(0.05))

	joy.SetAxis("left_x", 0.6)
	m.Poll(devs)

	joy.SetAxis("left_x", 0.62)
	if events := m.Poll(devs); len(events) != 0 {
		t.Fatalf("movement under custom epsilon emitted %v", events)
	}

	joy.SetAxis("left_x", 0.7)
	if events := m.Poll(devs); len(events) != 1 {
		t.Fatalf("movement over custom epsilon emitted %v, want one", events)
	}
}

func TestMonitorBindSpecific(t *testing.T) {
	devs, kb, joy := testDevices()
	m := NewMonitor(testProfile(t))

	var got []Event
	m.Bind("Jump", func(ev Event) { got = append(got, ev) })

	kb.Press("space")
	joy.SetAxis("left_x", 0.8)
	m.Poll(devs)

	if len(got) != 2 {
		t.Fatalf("Jump handler received %v, want 2 events", got)
	}
	for _, ev := range got {
		if ev.Action != "Jump" {
			t.Errorf("Jump handler received event for %q", ev.Action)
		}
	}
}

func TestMonitorBindAll(t *testing.T) {
	devs, kb, joy := testDevices()
	m := NewMonitor(testProfile(t))

	actions := make(map[string]int)
	m.Bind("", func(ev Event) { actions[ev.Action]++ })

	kb.Press("space")
	joy.SetAxis("left_x", 0.8)
	m.Poll(devs)

	if actions["Jump"] == 0 || actions["MoveX"] == 0 {
		t.Errorf("subscribe-all handler saw %v, want events for both actions", actions)
	}
}

func TestMonitorUnbind(t *testing.T) {
	devs, kb, _ := testDevices()
	m := NewMonitor(testProfile(t))

	calls := 0
	id := m.Bind("Jump", func(Event) { calls++ })

	kb.Press("space")
	m.Poll(devs)
	if calls == 0 {
		t.Fatal("handler not called before Unbind")
	}

	if !m.Unbind(id) {
		t.Fatal("Unbind() = false for live subscription")
	}
	if m.Unbind(id) {
		t.Error("Unbind() = true for removed subscription")
	}

	calls = 0
	kb.Release("space")
	m.Poll(devs)
	if calls != 0 {
		t.Errorf("handler called %d times after Unbind", calls)
	}
}

func TestMonitorReset(t *testing.T) {
	devs, kb, _ := testDevices()
	m := NewMonitor(testProfile(t))

	kb.Press("space")
	m.Poll(devs)

	m.Reset()
	events := m.Poll(devs)
	press := 0
	for _, ev := range events {
		if ev.Type == EventPressed {
			press++
		}
	}
	if press != 1 {
		t.Errorf("poll after Reset emitted %v, want a fresh press edge", events)
	}
}

func TestMonitorSetProfileRetainsState(t *testing.T) {
	devs, kb, _ := testDevices()
	p := testProfile(t)
	m := NewMonitor(p)

	kb.Press("space")
	m.Poll(devs)

	m.SetProfile(p.Clone())
	if events := m.Poll(devs); len(events) != 0 {
		t.Errorf("poll after profile swap emitted %v, want none while still held", events)
	}
}

func TestMonitorNilProfile(t *testing.T) {
	devs, _, _ := testDevices()
	m := NewMonitor(nil)

	if events := m.Poll(devs); events != nil {
		t.Errorf("Poll() with nil profile = %v, want nil", events)
	}
}
