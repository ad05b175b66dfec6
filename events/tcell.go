package events

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var tcellKeys = map[tcell.Key]string{
	tcell.KeyUp:         KeyArrowUp,
	tcell.KeyDown:       KeyArrowDown,
	tcell.KeyLeft:       KeyArrowLeft,
	tcell.KeyRight:      KeyArrowRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= ModMeta
	}
	return mod
}

// FromTcellKey translates a tcell key event.
func FromTcellKey(ev *tcell.EventKey, target Element) (KeyboardEvent, bool) {
	e := KeyboardEvent{Target: target}
	if ev == nil {
		return e, false
	}
	e.Mod = fromTcellMod(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			e.Mod |= ModShift
		}
		e.Key = string(r)
		return e, true
	case k == tcell.KeyBacktab:
		e.Key, e.Mod = KeyTab, e.Mod|ModShift
		return e, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && tcellKeys[k] == "":
		e.Key = string(rune('a' + int(k-tcell.KeyCtrlA)))
		e.Mod |= ModCtrl
		return e, true
	default:
		name, ok := tcellKeys[k]
		if !ok {
			return e, false
		}
		e.Key = name
		return e, true
	}
}

// FromTcellMouse translates a tcell mouse event carrying a button press.
// resolve maps the cell under the pointer to an element.
func FromTcellMouse(ev *tcell.EventMouse, resolve func(x, y int) Element) (PointerEvent, bool) {
	e := PointerEvent{}
	if ev == nil {
		return e, false
	}
	switch b := ev.Buttons(); {
	case b&tcell.Button1 != 0:
		e.Button = ButtonPrimary
	case b&tcell.Button3 != 0:
		e.Button = ButtonAuxiliary
	case b&tcell.Button2 != 0:
		e.Button = ButtonSecondary
	default:
		return e, false
	}
	e.Mod = fromTcellMod(ev.Modifiers())
	if resolve != nil {
		x, y := ev.Position()
		e.Target = resolve(x, y)
	}
	return e, true
}
