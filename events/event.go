// Package events matches keyboard and pointer events against ordered rules.
//
// Events are DOM-shaped but renderer-neutral: a key is identified by its DOM
// key name ("ArrowDown", "Enter", "a", " "), modifiers are a bitset and the
// event target is an Element. Terminal front ends translate their native
// events with FromTeaKey/FromTeaMouse (bubbletea) or FromTcellKey/
// FromTcellMouse (tcell).
package events

import "strings"

// Modifier is a bitset of pressed modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModShift Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
	ModMeta  Modifier = 1 << 3
)

// Has reports whether every bit of m2 is set in m.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "+")
}

// DOM key names used by the patterns.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeySpace      = " "
	KeyTab        = "Tab"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyShift      = "Shift"
)

// KeyboardEvent is a key press.
type KeyboardEvent struct {
	Key    string
	Mod    Modifier
	Target Element

	prevented bool
}

// PreventDefault marks the event as consumed.
func (e *KeyboardEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler consumed the event.
func (e *KeyboardEvent) DefaultPrevented() bool { return e.prevented }

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// PointerEvent is a pointer press or release on Target.
type PointerEvent struct {
	Mod    Modifier
	Button Button
	Target Element

	prevented bool
}

// PreventDefault marks the event as consumed.
func (e *PointerEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler consumed the event.
func (e *PointerEvent) DefaultPrevented() bool { return e.prevented }

// FocusEvent reports focus moving from or to Target. RelatedTarget is the
// element on the other side of the move, or nil when focus leaves the surface.
type FocusEvent struct {
	Target        Element
	RelatedTarget Element
}

// InputEvent reports an edit of a text input. InputType follows the DOM
// names ("insertText", "deleteContentBackward", ...).
type InputEvent struct {
	Target    Element
	InputType string
}

// IsDeletion reports whether the edit removed text.
func (e InputEvent) IsDeletion() bool {
	return strings.HasPrefix(e.InputType, "delete")
}
