// Package trigger turns per-poll action values into edge events.
//
// A Monitor remembers each action's resolved value and press state
// between polls. Each Poll emits events for the transitions since the
// previous poll and dispatches them to bound handlers. Resolution
// itself never fails; an action whose bindings have gone stale simply
// resolves to 0 and releases.
package trigger

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/profile"
)

// EventType identifies the kind of action transition.
type EventType uint8

const (
	// EventPressed fires when an action's resolved value crosses its
	// press threshold.
	EventPressed EventType = iota
	// EventReleased fires when an action's resolved value falls back
	// under its press threshold.
	EventReleased
	// EventValueChanged fires when an action's resolved value moves by
	// more than the monitor epsilon.
	EventValueChanged
)

// String returns the name of the event type.
func (t EventType) String() string {
	switch t {
	case EventPressed:
		return "Pressed"
	case EventReleased:
		return "Released"
	case EventValueChanged:
		return "ValueChanged"
	default:
		return fmt.Sprintf("EventType(%d)", t)
	}
}

// Event describes one action transition observed by a poll.
type Event struct {
	Action   string
	Type     EventType
	Value    float64
	Previous float64
}

// HandlerFunc receives events for a subscription.
type HandlerFunc func(Event)

// DefaultEpsilon is the minimum value movement reported as a change.
const DefaultEpsilon = 0.001

// boundHandler pairs a handler with its subscription id.
type boundHandler struct {
	id uuid.UUID
	fn HandlerFunc
}

// Monitor polls a profile and emits events on action transitions. A
// fresh monitor treats every action as released at value 0, so inputs
// already held at startup produce events on the first poll. Monitor is
// not safe for concurrent use; call it from the poll loop only.
type Monitor struct {
	prof     *profile.Profile
	epsilon  float64
	prevVal  map[string]float64
	prevDown map[string]bool
	handlers map[string][]boundHandler
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithEpsilon sets the value-change epsilon. Non-positive values are
// ignored.
func WithEpsilon(e float64) MonitorOption {
	return func(m *Monitor) {
		if e > 0 {
			m.epsilon = e
		}
	}
}

// NewMonitor returns a monitor over the given profile.
func NewMonitor(p *profile.Profile, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		prof:     p,
		epsilon:  DefaultEpsilon,
		prevVal:  make(map[string]float64),
		prevDown: make(map[string]bool),
		handlers: make(map[string][]boundHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Bind subscribes fn to events for the named action. An empty name
// subscribes to every action. The returned id is used to unbind.
func (m *Monitor) Bind(name string, fn HandlerFunc) uuid.UUID {
	id := uuid.New()
	m.handlers[name] = append(m.handlers[name], boundHandler{id: id, fn: fn})
	return id
}

// Unbind removes a subscription and reports whether it existed.
func (m *Monitor) Unbind(id uuid.UUID) bool {
	for name, hs := range m.handlers {
		for i, h := range hs {
			if h.id == id {
				m.handlers[name] = append(hs[:i], hs[i+1:]...)
				if len(m.handlers[name]) == 0 {
					delete(m.handlers, name)
				}
				return true
			}
		}
	}
	return false
}

// Poll resolves every action once against devs, emits events for
// transitions since the previous poll, and returns them in profile
// order. For a single action, a value change is reported before its
// press or release edge.
func (m *Monitor) Poll(devs input.Set) []Event {
	if m.prof == nil {
		return nil
	}

	var events []Event
	for _, a := range m.prof.Actions() {
		name := a.Name()
		v := a.Value(devs)
		down := math.Abs(v) >= a.PressThreshold()
		prev := m.prevVal[name]
		wasDown := m.prevDown[name]

		if math.Abs(v-prev) > m.epsilon {
			events = append(events, Event{Action: name, Type: EventValueChanged, Value: v, Previous: prev})
		}
		switch {
		case down && !wasDown:
			events = append(events, Event{Action: name, Type: EventPressed, Value: v, Previous: prev})
		case !down && wasDown:
			events = append(events, Event{Action: name, Type: EventReleased, Value: v, Previous: prev})
		}

		m.prevVal[name] = v
		m.prevDown[name] = down
	}

	for _, ev := range events {
		m.dispatch(ev)
	}
	return events
}

// dispatch delivers one event: the action's own handlers first, then
// the subscribe-all handlers, each in bind order.
func (m *Monitor) dispatch(ev Event) {
	for _, h := range m.handlers[ev.Action] {
		h.fn(ev)
	}
	if ev.Action == "" {
		return
	}
	for _, h := range m.handlers[""] {
		h.fn(ev)
	}
}

// Reset forgets all remembered values. The next poll compares against
// a released, zero-value baseline again.
func (m *Monitor) Reset() {
	clear(m.prevVal)
	clear(m.prevDown)
}

// SetProfile swaps the monitored profile. State for actions that keep
// their names is retained so a reload does not re-fire edges.
func (m *Monitor) SetProfile(p *profile.Profile) {
	m.prof = p

	keep := make(map[string]bool)
	if p != nil {
		for _, n := range p.Names() {
			keep[n] = true
		}
	}
	for n := range m.prevVal {
		if !keep[n] {
			delete(m.prevVal, n)
		}
	}
	for n := range m.prevDown {
		if !keep[n] {
			delete(m.prevDown, n)
		}
	}
}

// Profile returns the monitored profile.
func (m *Monitor) Profile() *profile.Profile {
	return m.prof
}
