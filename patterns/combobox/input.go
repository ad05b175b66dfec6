package combobox

import (
	"unicode/utf8"

	"github.com/jask/ariakit/events"
)

// InputElement is the text input a combobox is bound to.
type InputElement interface {
	events.Element
	Value() string
	SetValue(v string)
	// SetSelectionRange selects the text between the rune offsets start and end.
	SetSelectionRange(start, end int)
}

// TextField is an in-memory InputElement. Terminal hosts mirror it into
// their own text widget.
type TextField struct {
	id         string
	parent     events.Element
	value      string
	start, end int
}

// NewTextField creates a field inside parent (which may be nil).
func NewTextField(id string, parent events.Element) *TextField {
	return &TextField{id: id, parent: parent}
}

func (f *TextField) ElementID() string { return f.id }

// Contains reports whether other is the field itself; a field has no children.
func (f *TextField) Contains(other events.Element) bool {
	o, ok := other.(*TextField)
	return ok && o == f
}

// ParentElement returns the element the field was created in.
func (f *TextField) ParentElement() events.Element { return f.parent }

func (f *TextField) Value() string { return f.value }

// SetValue replaces the text and puts the caret at the end.
func (f *TextField) SetValue(v string) {
	f.value = v
	n := utf8.RuneCountInString(v)
	f.start, f.end = n, n
}

func (f *TextField) SetSelectionRange(start, end int) {
	n := utf8.RuneCountInString(f.value)
	f.start = min(max(start, 0), n)
	f.end = min(max(end, f.start), n)
}

// Selection returns the selected rune range.
func (f *TextField) Selection() (start, end int) { return f.start, f.end }

// Type simulates typing: the selected range is replaced by s.
func (f *TextField) Type(s string) events.InputEvent {
	r := []rune(f.value)
	start, end := f.start, f.end
	f.value = string(r[:start]) + s + string(r[end:])
	caret := start + utf8.RuneCountInString(s)
	f.start, f.end = caret, caret
	return events.InputEvent{Target: f, InputType: "insertText"}
}

// Backspace simulates a backward delete: the selected range, or the rune
// before the caret, is removed.
func (f *TextField) Backspace() events.InputEvent {
	r := []rune(f.value)
	start, end := f.start, f.end
	if start == end && start > 0 {
		start--
	}
	f.value = string(r[:start]) + string(r[end:])
	f.start, f.end = start, start
	return events.InputEvent{Target: f, InputType: "deleteContentBackward"}
}
