package core

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Binding is what a key does while held.
type Binding struct {
	Side   Side
	Intent Intent
}

// Keymap maps host-independent key identifiers to paddle bindings.
type Keymap map[string]Binding

func DefaultKeymap() Keymap {
	return Keymap{
		"w":         {Side: Left, Intent: Up},
		"s":         {Side: Left, Intent: Down},
		"ArrowUp":   {Side: Right, Intent: Up},
		"ArrowDown": {Side: Right, Intent: Down},
	}
}

type keymapFile struct {
	Left  paddleKeys `toml:"left"`
	Right paddleKeys `toml:"right"`
}

type paddleKeys struct {
	Up   []string `toml:"up"`
	Down []string `toml:"down"`
}

// LoadKeymap reads a TOML keymap of the form
//
//	[left]
//	up = ["w"]
//	down = ["s"]
//
// A side left out of the file keeps no bindings. Unknown tables or keys are rejected.
func LoadKeymap(path string) (Keymap, error) {
	var f keymapFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			names = append(names, key.String())
		}
		return nil, fmt.Errorf("keymap %s: unknown entries %s", path, strings.Join(names, ", "))
	}

	km := Keymap{}
	sections := []struct {
		side Side
		keys paddleKeys
	}{
		{Left, f.Left},
		{Right, f.Right},
	}
	for _, section := range sections {
		if err := km.bind(section.keys.Up, Binding{Side: section.side, Intent: Up}); err != nil {
			return nil, fmt.Errorf("keymap %s: %w", path, err)
		}
		if err := km.bind(section.keys.Down, Binding{Side: section.side, Intent: Down}); err != nil {
			return nil, fmt.Errorf("keymap %s: %w", path, err)
		}
	}
	return km, nil
}

func (km Keymap) bind(keys []string, b Binding) error {
	for _, key := range keys {
		if key == "" {
			return fmt.Errorf("empty key for %s %s", b.Side, b.Intent)
		}
		if prev, ok := km[key]; ok {
			return fmt.Errorf("key %q bound to both %s %s and %s %s", key, prev.Side, prev.Intent, b.Side, b.Intent)
		}
		km[key] = b
	}
	return nil
}

// KeyMapper turns key transitions into paddle intents. Each paddle follows the most recently
// pressed of its keys that is still held, so releasing a key that is not driving the paddle
// leaves it moving.
type KeyMapper struct {
	keymap Keymap
	held   [2][]string
}

func NewKeyMapper(km Keymap) *KeyMapper {
	return &KeyMapper{keymap: km}
}

// Apply folds e into the held-key state. ok is false for unbound keys.
func (m *KeyMapper) Apply(e KeyEvent) (side Side, intent Intent, ok bool) {
	b, ok := m.keymap[e.Key]
	if !ok {
		return Left, Still, false
	}

	held := without(m.held[b.Side], e.Key)
	if e.Down {
		held = append(held, e.Key)
	}
	m.held[b.Side] = held

	if len(held) == 0 {
		return b.Side, Still, true
	}
	return b.Side, m.keymap[held[len(held)-1]].Intent, true
}

func without(keys []string, key string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
