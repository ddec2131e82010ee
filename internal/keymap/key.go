package keymap

import "strings"

// Modifier is a set of held modifier keys
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift

	ModNone Modifier = 0
)

// Has reports whether all of m2 are held
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Key is one key press: modifiers plus a key symbol such as "up", "enter"
// or a single character.
type Key struct {
	Mods Modifier
	Code string
}

var prefixes = []struct {
	text string
	mod  Modifier
}{
	{"alt+", ModAlt},
	{"ctrl+", ModCtrl},
	{"shift+", ModShift},
}

// ParseKey parses bubbletea key notation ("ctrl+q", "alt+e", "shift+left",
// "alt+ctrl+x"). Modifier prefixes are case-insensitive; named keys are
// lowercased while single characters keep their case.
func ParseKey(s string) Key {
	var k Key
	for {
		matched := false
		for _, p := range prefixes {
			// a lone "+" after a prefix is the plus key itself
			if len(s) > len(p.text) && strings.EqualFold(s[:len(p.text)], p.text) {
				k.Mods |= p.mod
				s = s[len(p.text):]
				matched = true
			}
		}
		if !matched {
			break
		}
	}
	if len([]rune(s)) > 1 {
		s = strings.ToLower(s)
	}
	k.Code = s
	return k
}

// String renders the key in bubbletea notation, modifiers in alt, ctrl,
// shift order.
func (k Key) String() string {
	var b strings.Builder
	if k.Mods.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Mods.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Mods.Has(ModShift) {
		b.WriteString("shift+")
	}
	b.WriteString(k.Code)
	return b.String()
}

// IsRune reports whether the key is a single printable character
func (k Key) IsRune() bool {
	return len([]rune(k.Code)) == 1
}

// Normalize rewrites a key string into canonical notation
func Normalize(s string) string {
	return ParseKey(s).String()
}
