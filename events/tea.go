package events

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// FromTeaKey translates a bubbletea key message. It reports false for
// messages that carry no key the patterns understand (pastes, unknown
// control sequences).
func FromTeaKey(msg tea.KeyMsg, target Element) (KeyboardEvent, bool) {
	e := KeyboardEvent{Target: target}
	if msg.Alt {
		e.Mod |= ModAlt
	}
	if msg.Paste {
		return e, false
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return e, false
		}
		r := msg.Runes[0]
		if unicode.IsUpper(r) {
			e.Mod |= ModShift
		}
		e.Key = string(r)
		return e, true
	case tea.KeySpace:
		e.Key = KeySpace
	case tea.KeyEnter:
		e.Key = KeyEnter
	case tea.KeyEsc:
		e.Key = KeyEscape
	case tea.KeyTab:
		e.Key = KeyTab
	case tea.KeyShiftTab:
		e.Key, e.Mod = KeyTab, e.Mod|ModShift
	case tea.KeyBackspace:
		e.Key = KeyBackspace
	case tea.KeyDelete:
		e.Key = KeyDelete
	case tea.KeyCtrlAt:
		e.Key, e.Mod = KeySpace, e.Mod|ModCtrl

	case tea.KeyUp:
		e.Key = KeyArrowUp
	case tea.KeyDown:
		e.Key = KeyArrowDown
	case tea.KeyLeft:
		e.Key = KeyArrowLeft
	case tea.KeyRight:
		e.Key = KeyArrowRight
	case tea.KeyShiftUp:
		e.Key, e.Mod = KeyArrowUp, e.Mod|ModShift
	case tea.KeyShiftDown:
		e.Key, e.Mod = KeyArrowDown, e.Mod|ModShift
	case tea.KeyShiftLeft:
		e.Key, e.Mod = KeyArrowLeft, e.Mod|ModShift
	case tea.KeyShiftRight:
		e.Key, e.Mod = KeyArrowRight, e.Mod|ModShift
	case tea.KeyCtrlUp:
		e.Key, e.Mod = KeyArrowUp, e.Mod|ModCtrl
	case tea.KeyCtrlDown:
		e.Key, e.Mod = KeyArrowDown, e.Mod|ModCtrl
	case tea.KeyCtrlLeft:
		e.Key, e.Mod = KeyArrowLeft, e.Mod|ModCtrl
	case tea.KeyCtrlRight:
		e.Key, e.Mod = KeyArrowRight, e.Mod|ModCtrl
	case tea.KeyCtrlShiftUp:
		e.Key, e.Mod = KeyArrowUp, e.Mod|ModCtrl|ModShift
	case tea.KeyCtrlShiftDown:
		e.Key, e.Mod = KeyArrowDown, e.Mod|ModCtrl|ModShift
	case tea.KeyCtrlShiftLeft:
		e.Key, e.Mod = KeyArrowLeft, e.Mod|ModCtrl|ModShift
	case tea.KeyCtrlShiftRight:
		e.Key, e.Mod = KeyArrowRight, e.Mod|ModCtrl|ModShift

	case tea.KeyHome:
		e.Key = KeyHome
	case tea.KeyEnd:
		e.Key = KeyEnd
	case tea.KeyShiftHome:
		e.Key, e.Mod = KeyHome, e.Mod|ModShift
	case tea.KeyShiftEnd:
		e.Key, e.Mod = KeyEnd, e.Mod|ModShift
	case tea.KeyCtrlHome:
		e.Key, e.Mod = KeyHome, e.Mod|ModCtrl
	case tea.KeyCtrlEnd:
		e.Key, e.Mod = KeyEnd, e.Mod|ModCtrl
	case tea.KeyCtrlShiftHome:
		e.Key, e.Mod = KeyHome, e.Mod|ModCtrl|ModShift
	case tea.KeyCtrlShiftEnd:
		e.Key, e.Mod = KeyEnd, e.Mod|ModCtrl|ModShift
	case tea.KeyPgUp:
		e.Key = KeyPageUp
	case tea.KeyPgDown:
		e.Key = KeyPageDown
	case tea.KeyCtrlPgUp:
		e.Key, e.Mod = KeyPageUp, e.Mod|ModCtrl
	case tea.KeyCtrlPgDown:
		e.Key, e.Mod = KeyPageDown, e.Mod|ModCtrl

	default:
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			e.Key = string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
			e.Mod |= ModCtrl
			return e, true
		}
		return e, false
	}
	return e, true
}

// FromTeaMouse translates a bubbletea mouse press. resolve maps the cell
// under the pointer to the element rendered there (nil when none). Only
// presses produce pointer events.
func FromTeaMouse(msg tea.MouseMsg, resolve func(x, y int) Element) (PointerEvent, bool) {
	e := PointerEvent{}
	if msg.Action != tea.MouseActionPress {
		return e, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		e.Button = ButtonPrimary
	case tea.MouseButtonMiddle:
		e.Button = ButtonAuxiliary
	case tea.MouseButtonRight:
		e.Button = ButtonSecondary
	default:
		return e, false
	}
	if msg.Ctrl {
		e.Mod |= ModCtrl
	}
	if msg.Shift {
		e.Mod |= ModShift
	}
	if msg.Alt {
		e.Mod |= ModAlt
	}
	if resolve != nil {
		e.Target = resolve(msg.X, msg.Y)
	}
	return e, true
}
