package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyMapper_Apply(t *testing.T) {
	type step struct {
		key    string
		down   bool
		side   Side
		intent Intent
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "press and release",
			steps: []step{
				{"w", true, Left, Up},
				{"w", false, Left, Still},
			},
		},
		{
			name: "latest held key wins",
			steps: []step{
				{"w", true, Left, Up},
				{"s", true, Left, Down},
				{"s", false, Left, Up},
				{"w", false, Left, Still},
			},
		},
		{
			name: "releasing the older key keeps the newer one",
			steps: []step{
				{"ArrowUp", true, Right, Up},
				{"ArrowDown", true, Right, Down},
				{"ArrowUp", false, Right, Down},
			},
		},
		{
			name: "key repeat does not stack",
			steps: []step{
				{"s", true, Left, Down},
				{"s", true, Left, Down},
				{"s", false, Left, Still},
			},
		},
		{
			name: "sides are independent",
			steps: []step{
				{"w", true, Left, Up},
				{"ArrowDown", true, Right, Down},
				{"w", false, Left, Still},
				{"ArrowDown", false, Right, Still},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewKeyMapper(DefaultKeymap())
			for i, st := range tt.steps {
				side, intent, ok := m.Apply(KeyEvent{Key: st.key, Down: st.down})
				if !ok {
					t.Fatalf("step %d: expected %q to be bound", i, st.key)
				}
				if side != st.side || intent != st.intent {
					t.Fatalf("step %d: expected %v %v, got %v %v", i, st.side, st.intent, side, intent)
				}
			}
		})
	}
}

func TestKeyMapper_UnknownKey(t *testing.T) {
	m := NewKeyMapper(DefaultKeymap())
	m.Apply(KeyEvent{Key: "w", Down: true})

	if _, _, ok := m.Apply(KeyEvent{Key: "x", Down: true}); ok {
		t.Error("expected an unbound key to be rejected")
	}
	if _, intent, _ := m.Apply(KeyEvent{Key: "x", Down: false}); intent != Still {
		t.Errorf("expected an unbound release to report Still, got %v", intent)
	}
	if _, intent, _ := m.Apply(KeyEvent{Key: "s", Down: true}); intent != Down {
		t.Errorf("expected s to take over, got %v", intent)
	}
	if _, intent, _ := m.Apply(KeyEvent{Key: "s", Down: false}); intent != Up {
		t.Errorf("expected w still held after the unbound keys, got %v", intent)
	}
}

func writeKeymap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymap.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeymap(t *testing.T) {
	path := writeKeymap(t, `
[left]
up = ["w", "k"]
down = ["s", "j"]

[right]
up = ["ArrowUp"]
down = ["ArrowDown"]
`)

	km, err := LoadKeymap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Keymap{
		"w":         {Side: Left, Intent: Up},
		"k":         {Side: Left, Intent: Up},
		"s":         {Side: Left, Intent: Down},
		"j":         {Side: Left, Intent: Down},
		"ArrowUp":   {Side: Right, Intent: Up},
		"ArrowDown": {Side: Right, Intent: Down},
	}
	if len(km) != len(want) {
		t.Fatalf("expected %d bindings, got %d: %v", len(want), len(km), km)
	}
	for key, b := range want {
		if km[key] != b {
			t.Errorf("key %q: expected %v, got %v", key, b, km[key])
		}
	}
}

func TestLoadKeymap_MissingSideHasNoBindings(t *testing.T) {
	path := writeKeymap(t, "[left]\nup = [\"w\"]\n")

	km, err := LoadKeymap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(km) != 1 {
		t.Errorf("expected one binding, got %v", km)
	}
}

func TestLoadKeymap_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"duplicate key", "[left]\nup = [\"w\"]\n[right]\ndown = [\"w\"]\n", "bound to both"},
		{"empty key", "[left]\nup = [\"\"]\n", "empty key"},
		{"unknown table", "[middle]\nup = [\"x\"]\n", "unknown entries"},
		{"unknown action", "[left]\njump = [\"x\"]\n", "unknown entries"},
		{"malformed", "[left\nup = w\n", "keymap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeymap(writeKeymap(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("expected error mentioning %q, got %v", tt.message, err)
			}
		})
	}
}

func TestLoadKeymap_MissingFile(t *testing.T) {
	if _, err := LoadKeymap(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
