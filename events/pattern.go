package events

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pattern identifies which events a rule accepts.
type Pattern struct {
	Key       string            // specific key name, compared case-insensitively
	Predicate func(string) bool // alternative to Key, tested against single-character keys
	Masks     []Modifier        // acceptable modifier masks; empty means ModNone only
	AnyMod    bool              // ignore modifiers entirely
}

// Key matches key with no modifiers pressed.
func Key(key string) Pattern {
	return Pattern{Key: key}
}

// Char matches any single visible character accepted by re.
func Char(re *regexp.Regexp) Pattern {
	return Pattern{Predicate: func(k string) bool {
		return utf8.RuneCountInString(k) == 1 && re.MatchString(k)
	}}
}

// Printable matches any single character key.
var Printable = Char(regexp.MustCompile(`^.$`))

// With replaces the accepted modifier masks. Passing several masks accepts
// any of them, for example With(ModCtrl, ModMeta) for the primary modifier.
func (p Pattern) With(masks ...Modifier) Pattern {
	p.Masks = append([]Modifier(nil), masks...)
	p.AnyMod = false
	return p
}

// AnyModifier makes the pattern ignore modifier state.
func (p Pattern) AnyModifier() Pattern {
	p.AnyMod = true
	p.Masks = nil
	return p
}

// Primary is the platform-equivalent primary modifier: Ctrl or Meta.
func Primary(extra Modifier) []Modifier {
	return []Modifier{ModCtrl | extra, ModMeta | extra}
}

func (p Pattern) modMatches(mod Modifier) bool {
	if p.AnyMod {
		return true
	}
	if len(p.Masks) == 0 {
		return mod == ModNone
	}
	for _, m := range p.Masks {
		if m == mod {
			return true
		}
	}
	return false
}

func (p Pattern) keyMatches(key string) bool {
	if p.Predicate != nil {
		return p.Predicate(key)
	}
	return p.Key != "" && strings.EqualFold(p.Key, key)
}

// Matches reports whether the key event satisfies p.
func (p Pattern) Matches(e *KeyboardEvent) bool {
	return p.modMatches(e.Mod) && p.keyMatches(e.Key)
}
