package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/dshills/actionmap/internal/action"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/logging"
)

// Profile is an ordered collection of actions loaded from one
// document. Order follows the document and is preserved on encode.
type Profile struct {
	actions []*action.Action
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{}
}

// Add appends an action. It fails when the action is invalid or when
// the profile already holds an action with the same name.
func (p *Profile) Add(a *action.Action) error {
	if a == nil {
		return fmt.Errorf("%w: nil action", ErrInvalidName)
	}
	if !a.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidName, a.Name())
	}
	if p.Get(a.Name()) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, a.Name())
	}
	p.actions = append(p.actions, a)
	return nil
}

// Get returns the named action, or nil when absent.
func (p *Profile) Get(name string) *action.Action {
	for _, a := range p.actions {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Remove deletes the named action and reports whether it existed.
func (p *Profile) Remove(name string) bool {
	for i, a := range p.actions {
		if a.Name() == name {
			p.actions = append(p.actions[:i], p.actions[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the action names in document order.
func (p *Profile) Names() []string {
	names := make([]string, len(p.actions))
	for i, a := range p.actions {
		names[i] = a.Name()
	}
	return names
}

// Actions returns the actions in document order. The slice is a copy;
// the actions themselves are shared.
func (p *Profile) Actions() []*action.Action {
	out := make([]*action.Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// Len returns the number of actions.
func (p *Profile) Len() int {
	return len(p.actions)
}

// Value resolves the named action against the device backends. An
// unknown name resolves to 0; resolution never fails at runtime.
func (p *Profile) Value(name string, devs input.Set) float64 {
	a := p.Get(name)
	if a == nil {
		return 0
	}
	return a.Value(devs)
}

// Pressed reports whether the named action is pressed. An unknown name
// is never pressed.
func (p *Profile) Pressed(name string, devs input.Set) bool {
	a := p.Get(name)
	if a == nil {
		return false
	}
	return a.Pressed(devs)
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	out := &Profile{actions: make([]*action.Action, len(p.actions))}
	for i, a := range p.actions {
		out.actions[i] = a.Clone()
	}
	return out
}

// Collision identifies one pair of binding slots whose identifiers
// cancel each other out.
type Collision struct {
	ActionA string
	IndexA  int
	ActionB string
	IndexB  int
}

// Collisions scans every pair of binding slots across the profile,
// including pairs within one action, and returns the colliding pairs.
// A slot paired with itself is reported only when its own positive and
// negative identifiers match.
func (p *Profile) Collisions(devs input.Set) []Collision {
	type slot struct {
		act  string
		idx  int
		bind action.Binding
	}

	var slots []slot
	for _, a := range p.actions {
		for i, b := range a.Bindings() {
			slots = append(slots, slot{act: a.Name(), idx: i, bind: b})
		}
	}

	var out []Collision
	for i := 0; i < len(slots); i++ {
		for j := i; j < len(slots); j++ {
			if action.Collides(slots[i].bind, slots[j].bind, devs) {
				out = append(out, Collision{
					ActionA: slots[i].act,
					IndexA:  slots[i].idx,
					ActionB: slots[j].act,
					IndexB:  slots[j].idx,
				})
			}
		}
	}
	return out
}

// Loader loads profiles from disk, validating bindings against a
// device set and logging diagnostics.
type Loader struct {
	devs   input.Set
	logger *logging.Logger
}

// NewLoader returns a loader that validates against devs. A nil logger
// disables diagnostics.
func NewLoader(devs input.Set, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NullLogger
	}
	return &Loader{devs: devs, logger: logger}
}

// LoadFile reads and decodes a profile document. On failure it logs a
// diagnostic and returns an error carrying the path; the caller must
// discard any previously held profile state only on success.
func (l *Loader) LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error("reading profile: %v", err)
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	p, err := Parse(data, l.devs)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		} else {
			err = fmt.Errorf("%s: %w", path, err)
		}
		l.logger.Error("loading profile: %v", err)
		return nil, err
	}

	l.logger.Info("loaded profile %s with %d actions", path, p.Len())
	return p, nil
}
