package state

import (
	"sort"
	"testing"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"a", "a", true},
		{"A", "a", true},
		{"  W  ", "w", true},
		{"7", "7", true},
		{"f12", "f12", true},
		{"F5", "f5", true},
		{"esc", "escape", true},
		{"Escape", "escape", true},
		{"return", "enter", true},
		{"CR", "enter", true},
		{"pgup", "pageup", true},
		{"space", "space", true},
		{"lshift", "lshift", true},
		{"f13", "", false},
		{"super", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalKey(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalKey(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeyboardPressRelease(t *testing.T) {
	kb := NewKeyboard()

	if kb.Pressed("w") {
		t.Error("fresh keyboard reports w pressed")
	}

	kb.Press("w")
	if !kb.Pressed("w") {
		t.Error("Pressed(w) = false after Press(w)")
	}
	if !kb.Pressed("W") {
		t.Error("Pressed is not case-insensitive")
	}

	kb.Release("W")
	if kb.Pressed("w") {
		t.Error("Pressed(w) = true after Release(W)")
	}
}

func TestKeyboardAliasesShareState(t *testing.T) {
	kb := NewKeyboard()

	kb.Press("esc")
	if !kb.Pressed("escape") {
		t.Error("Press(esc) did not set escape")
	}

	kb.Release("escape")
	if kb.Pressed("esc") {
		t.Error("Release(escape) did not clear esc")
	}
}

func TestKeyboardIgnoresUnknownNames(t *testing.T) {
	kb := NewKeyboard()

	kb.Press("hyperspace")
	if kb.Pressed("hyperspace") {
		t.Error("unknown key reported as pressed")
	}
	if got := len(kb.Held()); got != 0 {
		t.Errorf("Held() has %d entries after unknown press, want 0", got)
	}
}

func TestKeyboardIsKey(t *testing.T) {
	kb := NewKeyboard()

	if !kb.IsKey("space") {
		t.Error("IsKey(space) = false")
	}
	if !kb.IsKey("Return") {
		t.Error("IsKey(Return) = false")
	}
	if kb.IsKey("banana") {
		t.Error("IsKey(banana) = true")
	}
}

func TestKeyboardHeldAndReset(t *testing.T) {
	kb := NewKeyboard()
	kb.Press("w")
	kb.Press("Space")
	kb.Press("esc")

	held := kb.Held()
	sort.Strings(held)
	want := []string{"escape", "space", "w"}
	if len(held) != len(want) {
		t.Fatalf("Held() = %v, want %v", held, want)
	}
	for i := range want {
		if held[i] != want[i] {
			t.Fatalf("Held() = %v, want %v", held, want)
		}
	}

	kb.Reset()
	if len(kb.Held()) != 0 {
		t.Errorf("Held() not empty after Reset: %v", kb.Held())
	}
}
