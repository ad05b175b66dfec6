package events

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboardFirstMatchWins(t *testing.T) {
	var got []string
	m := NewKeyboardEventManager().
		On(Key(KeyArrowDown), func(*KeyboardEvent) { got = append(got, "first") }).
		On(Key(KeyArrowDown), func(*KeyboardEvent) { got = append(got, "second") })

	e := &KeyboardEvent{Key: KeyArrowDown}
	require.True(t, m.Handle(e))
	assert.Equal(t, []string{"first"}, got)
	assert.True(t, e.DefaultPrevented())
}

func TestKeyboardModifierMasks(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		event   KeyboardEvent
		want    bool
	}{
		{name: "no_mods_required", pattern: Key("Home"), event: KeyboardEvent{Key: "Home"}, want: true},
		{name: "extra_mod_rejected", pattern: Key("Home"), event: KeyboardEvent{Key: "Home", Mod: ModShift}, want: false},
		{name: "exact_mask", pattern: Key("Home").With(ModShift), event: KeyboardEvent{Key: "Home", Mod: ModShift}, want: true},
		{name: "primary_ctrl", pattern: Key("a").With(Primary(ModNone)...), event: KeyboardEvent{Key: "a", Mod: ModCtrl}, want: true},
		{name: "primary_meta", pattern: Key("a").With(Primary(ModNone)...), event: KeyboardEvent{Key: "A", Mod: ModMeta}, want: true},
		{name: "primary_shift_mismatch", pattern: Key("Home").With(Primary(ModShift)...), event: KeyboardEvent{Key: "Home", Mod: ModCtrl}, want: false},
		{name: "any_mod", pattern: Key(KeyShift).AnyModifier(), event: KeyboardEvent{Key: "Shift", Mod: ModShift | ModCtrl}, want: true},
		{name: "case_insensitive", pattern: Key("enter"), event: KeyboardEvent{Key: "Enter"}, want: true},
		{name: "char_predicate", pattern: Char(regexp.MustCompile(`^[a-z]$`)), event: KeyboardEvent{Key: "q"}, want: true},
		{name: "char_predicate_multi_rune_key", pattern: Printable, event: KeyboardEvent{Key: "Enter"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.event
			if got := tt.pattern.Matches(&e); got != tt.want {
				t.Fatalf("Matches(%+v)=%v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestAllowDefaultAndUnmatched(t *testing.T) {
	calls := 0
	m := NewKeyboardEventManager().On(Key(KeyTab), func(*KeyboardEvent) { calls++ }, AllowDefault())

	e := &KeyboardEvent{Key: KeyTab}
	require.True(t, m.Handle(e))
	assert.False(t, e.DefaultPrevented())

	miss := &KeyboardEvent{Key: "x"}
	assert.False(t, m.Handle(miss))
	assert.False(t, miss.DefaultPrevented())
	assert.Equal(t, 1, calls)
}

func TestPointerManagerMatchesModifiersAndButtons(t *testing.T) {
	var got []string
	m := NewPointerEventManager().
		On(Pointer().With(ModShift), func(*PointerEvent) { got = append(got, "range") }).
		On(Pointer().With(ModCtrl), func(*PointerEvent) { got = append(got, "toggle") }).
		On(Pointer(), func(*PointerEvent) { got = append(got, "plain") })

	m.Handle(&PointerEvent{Mod: ModShift})
	m.Handle(&PointerEvent{Mod: ModCtrl})
	m.Handle(&PointerEvent{})
	assert.False(t, m.Handle(&PointerEvent{Button: ButtonSecondary}))
	assert.Equal(t, []string{"range", "toggle", "plain"}, got)
}

func TestNodeContains(t *testing.T) {
	root := NewNode("root", nil)
	child := NewNode("child", root)
	grand := NewNode("grand", child)
	other := NewNode("other", nil)

	assert.True(t, root.Contains(grand))
	assert.True(t, Within(child, grand))
	assert.True(t, Within(child, child))
	assert.False(t, child.Contains(root))
	assert.False(t, Within(root, other))
	assert.False(t, Within(root, nil))

	var focused string
	root.OnFocus(func(n *Node) { focused = n.ElementID() })
	late := NewNode("late", root)
	late.Focus()
	assert.Equal(t, "late", focused)
}

func TestFromTeaKey(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		wantKey string
		wantMod Modifier
	}{
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, wantKey: KeyArrowDown},
		{name: "shift_up", msg: tea.KeyMsg{Type: tea.KeyShiftUp}, wantKey: KeyArrowUp, wantMod: ModShift},
		{name: "ctrl_shift_home", msg: tea.KeyMsg{Type: tea.KeyCtrlShiftHome}, wantKey: KeyHome, wantMod: ModCtrl | ModShift},
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, wantKey: "b"},
		{name: "upper_rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'B'}}, wantKey: "B", wantMod: ModShift},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, wantKey: KeySpace},
		{name: "ctrl_a", msg: tea.KeyMsg{Type: tea.KeyCtrlA}, wantKey: "a", wantMod: ModCtrl},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, wantKey: KeyEnter},
		{name: "alt_left", msg: tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, wantKey: KeyArrowLeft, wantMod: ModAlt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := FromTeaKey(tt.msg, nil)
			if !ok {
				t.Fatalf("FromTeaKey(%v) not translated", tt.msg)
			}
			if e.Key != tt.wantKey || e.Mod != tt.wantMod {
				t.Fatalf("FromTeaKey(%v)=%q/%s, want %q/%s", tt.msg, e.Key, e.Mod, tt.wantKey, tt.wantMod)
			}
		})
	}

	if _, ok := FromTeaKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, nil); ok {
		t.Fatalf("paste must not translate")
	}
}

func TestFromTeaMouseResolvesTarget(t *testing.T) {
	n := NewNode("row-2", nil)
	e, ok := FromTeaMouse(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true},
		func(x, y int) Element {
			if y == 2 {
				return n
			}
			return nil
		})
	require.True(t, ok)
	assert.Equal(t, ModShift, e.Mod)
	assert.True(t, SameElement(n, e.Target))

	_, ok = FromTeaMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, nil)
	assert.False(t, ok)
}

func TestFromTcellKey(t *testing.T) {
	e, ok := FromTcellKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), nil)
	require.True(t, ok)
	assert.Equal(t, KeyArrowUp, e.Key)
	assert.Equal(t, ModShift, e.Mod)

	e, ok = FromTcellKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), nil)
	require.True(t, ok)
	assert.Equal(t, "x", e.Key)

	e, ok = FromTcellKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nil)
	require.True(t, ok)
	assert.Equal(t, KeyEnter, e.Key)
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "none", ModNone.String())
	assert.Equal(t, "ctrl+shift", (ModCtrl | ModShift).String())
}
