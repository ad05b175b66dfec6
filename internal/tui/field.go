package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/patterns/combobox"
)

// field is the combobox input: a TextField holds the value and selection
// the combobox reasons about, and a bubbles textinput mirrors it for caret
// movement and rendering.
type field struct {
	*combobox.TextField
	ti textinput.Model
}

func newField(id string, parent events.Element, placeholder string) *field {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return &field{TextField: combobox.NewTextField(id, parent), ti: ti}
}

func (f *field) sync() {
	f.ti.SetValue(f.Value())
	_, end := f.Selection()
	f.ti.SetCursor(end)
}

func (f *field) SetValue(v string) {
	f.TextField.SetValue(v)
	f.sync()
}

func (f *field) SetSelectionRange(start, end int) {
	f.TextField.SetSelectionRange(start, end)
	f.sync()
}

func (f *field) Type(s string) events.InputEvent {
	e := f.TextField.Type(s)
	e.Target = f
	f.sync()
	return e
}

func (f *field) Backspace() events.InputEvent {
	e := f.TextField.Backspace()
	e.Target = f
	f.sync()
	return e
}

// Contains matches the field itself.
func (f *field) Contains(other events.Element) bool {
	o, ok := other.(*field)
	return ok && o == f
}

// moveCaret hands a key the combobox left alone to the textinput, then
// collapses the selection onto the new caret.
func (f *field) moveCaret(msg tea.KeyMsg) {
	f.ti, _ = f.ti.Update(msg)
	pos := f.ti.Position()
	f.TextField.SetSelectionRange(pos, pos)
}

func (f *field) focus() { f.ti.Focus() }
func (f *field) blur()  { f.ti.Blur() }

// view renders the value with the completion range reversed, the way a
// browser paints a selection.
func (f *field) view(sel lipgloss.Style) string {
	start, end := f.Selection()
	if start == end {
		return f.ti.View()
	}
	r := []rune(f.Value())
	return f.ti.Prompt + string(r[:start]) + sel.Render(string(r[start:end])) + string(r[end:])
}
