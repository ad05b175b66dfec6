package combobox_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/clock"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/patterns/combobox"
	"github.com/jask/ariakit/patterns/listbox"
	"github.com/jask/ariakit/patterns/tree"
	"github.com/jask/ariakit/signal"
)

var fruits = []string{"Apple", "Apricot", "Banana", "Blackberry", "Blueberry", "Cantaloupe", "Cherry", "Clementine", "Cranberry"}

type harness struct {
	cb        *combobox.Combobox[string]
	lb        *listbox.Listbox[string]
	field     *combobox.TextField
	container *events.Node
	outside   *events.Node
	options   []*listbox.Option[string]
	values    *signal.Writable[[]string]
}

// newHarness wires a combobox over a listbox whose options are filtered by
// prefix on the typed text, the way a consumer would.
func newHarness(t *testing.T, mode combobox.FilterMode, items []string) *harness {
	t.Helper()
	h := &harness{
		container: events.NewNode("combobox", nil),
		outside:   events.NewNode("elsewhere", nil),
		values:    signal.New[[]string](nil),
	}
	h.field = combobox.NewTextField("input", h.container)
	popupNode := events.NewNode("popup", h.container)
	for _, it := range items {
		h.options = append(h.options, listbox.NewOption(listbox.OptionInputs[string]{
			ID: it, Value: it, Label: it, Element: events.NewNode(it, popupNode),
		}))
	}
	inputValue := signal.New("")
	filtered := signal.NewComputed(func() []*listbox.Option[string] {
		prefix := strings.ToLower(inputValue.Get())
		var out []*listbox.Option[string]
		for _, o := range h.options {
			if strings.HasPrefix(strings.ToLower(o.Label()), prefix) {
				out = append(out, o)
			}
		}
		return out
	})

	in := listbox.Inputs[string]{ID: "fruits"}
	in.Items = filtered
	in.Values = h.values
	in.FocusMode = signal.Const(list.ActiveDescendant)
	in.Clock = clock.NewManual(time.Unix(0, 0))
	h.lb = listbox.New(in)

	h.cb = combobox.New(combobox.Inputs[string]{
		Popup:      signal.Const(h.lb.Popup()),
		Input:      signal.Const[combobox.InputElement](h.field),
		Container:  signal.Const[events.Element](h.container),
		FilterMode: signal.Const(mode),
		InputValue: inputValue,
	})
	return h
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.cb.OnInput(h.field.Type(string(r)))
		h.cb.OnFilter()
	}
}

func (h *harness) key(k string) {
	h.cb.OnKeydown(&events.KeyboardEvent{Key: k, Target: h.field})
}

func assertField(t *testing.T, f *combobox.TextField, value string, start, end int) {
	t.Helper()
	gotStart, gotEnd := f.Selection()
	if f.Value() != value || gotStart != start || gotEnd != end {
		t.Fatalf("field = %q [%d,%d], want %q [%d,%d]", f.Value(), gotStart, gotEnd, value, start, end)
	}
}

func TestManualClickThenEditClearsSelection(t *testing.T) {
	h := newHarness(t, combobox.Manual, fruits)
	h.cb.OnFocusIn(events.FocusEvent{Target: h.field})
	h.cb.OnPointerup(&events.PointerEvent{Target: h.field})
	require.True(t, h.cb.Expanded())

	h.cb.OnPointerup(&events.PointerEvent{Target: h.options[0].Element()})
	assert.Equal(t, []string{"Apple"}, h.values.Get())
	assert.Equal(t, "Apple", h.field.Value())
	assert.False(t, h.cb.Expanded())

	h.cb.OnInput(h.field.Backspace())
	h.cb.OnFilter()
	assert.Equal(t, "Appl", h.field.Value())
	assert.Empty(t, h.values.Get())
	assert.True(t, h.cb.Expanded(), "editing opens the popup")
}

func TestManualTypingNeverSelects(t *testing.T) {
	h := newHarness(t, combobox.Manual, fruits)
	h.typeText("Bl")
	assert.Empty(t, h.values.Get())
	assert.Equal(t, "", h.lb.Popup().ActiveID())
}

func TestManualFocusOutSelectsExactMatch(t *testing.T) {
	h := newHarness(t, combobox.Manual, fruits)
	h.typeText("Cherry")
	h.cb.OnFocusOut(events.FocusEvent{Target: h.field, RelatedTarget: h.outside})
	assert.Equal(t, []string{"Cherry"}, h.values.Get())
	assert.False(t, h.cb.Expanded())
}

func TestFocusOutInsideContainerIsIgnored(t *testing.T) {
	h := newHarness(t, combobox.AutoSelect, fruits)
	h.typeText("B")
	require.True(t, h.cb.Expanded())
	h.cb.OnFocusOut(events.FocusEvent{Target: h.field, RelatedTarget: h.options[2].Element()})
	assert.True(t, h.cb.Expanded())
}

func TestAutoSelectCommitsOnFocusOut(t *testing.T) {
	h := newHarness(t, combobox.AutoSelect, fruits)
	h.typeText("bl")
	assert.Equal(t, []string{"Blackberry"}, h.values.Get())
	assert.Equal(t, "bl", h.field.Value(), "auto-select leaves the text alone")

	h.key(events.KeyArrowDown)
	assert.Equal(t, []string{"Blueberry"}, h.values.Get())

	h.cb.OnFocusOut(events.FocusEvent{Target: h.field})
	assert.Equal(t, "Blueberry", h.field.Value())
	assert.Equal(t, "Blueberry", h.cb.InputValue().Get())
	assert.False(t, h.cb.Expanded())
}

func TestNoMatchClearsSelection(t *testing.T) {
	h := newHarness(t, combobox.AutoSelect, fruits)
	h.typeText("b")
	require.NotEmpty(t, h.values.Get())
	h.typeText("z")
	assert.Empty(t, h.values.Get())
	assert.Equal(t, "", h.lb.Popup().ActiveID())
}

func TestHighlightRoundTrip(t *testing.T) {
	h := newHarness(t, combobox.Highlight, []string{"Apple", "Apricot", "Banana"})
	h.typeText("A")
	assertField(t, h.field, "Apple", 1, 5)
	assert.Equal(t, "A", h.cb.InputValue().Get())

	h.key(events.KeyArrowDown)
	assertField(t, h.field, "Apricot", 1, 7)
	assert.Equal(t, []string{"Apricot"}, h.values.Get())

	h.key(events.KeyArrowUp)
	assertField(t, h.field, "Apple", 1, 5)
	assert.Equal(t, []string{"Apple"}, h.values.Get())
}

func TestHighlightTypingReplacesCompletion(t *testing.T) {
	h := newHarness(t, combobox.Highlight, []string{"Apple", "Apricot", "Banana"})
	h.typeText("A")
	h.typeText("p")
	assertField(t, h.field, "Apple", 2, 5)
	h.typeText("r")
	assertField(t, h.field, "Apricot", 3, 7)
}

func TestHighlightSkipsAfterDeletion(t *testing.T) {
	h := newHarness(t, combobox.Highlight, []string{"Apple", "Apricot"})
	h.typeText("Ap")
	h.cb.OnInput(h.field.Backspace())
	h.cb.OnFilter()
	assert.Equal(t, "Ap", h.field.Value(), "deleting the completion must not bring it back")
	assert.Equal(t, []string{"Apple"}, h.values.Get())
}

func TestHighlightEscape(t *testing.T) {
	h := newHarness(t, combobox.Highlight, []string{"Apple", "Apricot"})
	h.typeText("A")

	h.key(events.KeyEscape)
	assert.Equal(t, "A", h.field.Value())
	assert.Empty(t, h.values.Get())
	assert.True(t, h.cb.Expanded(), "first escape only drops the completion")

	h.key(events.KeyEscape)
	assert.False(t, h.cb.Expanded())
}

func TestHighlightEnterCommits(t *testing.T) {
	h := newHarness(t, combobox.Highlight, []string{"Apple", "Apricot"})
	h.typeText("A")
	h.key(events.KeyEnter)
	assertField(t, h.field, "Apple", 5, 5)
	assert.False(t, h.cb.Expanded())
}

func TestClosedArrowsOpen(t *testing.T) {
	h := newHarness(t, combobox.Manual, fruits)
	h.key(events.KeyArrowUp)
	assert.True(t, h.cb.Expanded())
	assert.Equal(t, "Cranberry", h.cb.ActiveDescendant())

	h.key(events.KeyEscape)
	assert.False(t, h.cb.Expanded())
	assert.Equal(t, "", h.cb.ActiveDescendant())

	h.key(events.KeyArrowDown)
	assert.Equal(t, "Apple", h.cb.ActiveDescendant())
	assert.Equal(t, "fruits", h.cb.Controls())
}

func TestDisabledAndReadonly(t *testing.T) {
	for _, name := range []string{"disabled", "readonly"} {
		field := combobox.NewTextField("input", nil)
		in := combobox.Inputs[string]{Input: signal.Const[combobox.InputElement](field)}
		if name == "disabled" {
			in.Disabled = signal.Const(true)
		} else {
			in.Readonly = signal.Const(true)
		}
		cb := combobox.New(in)
		cb.OnKeydown(&events.KeyboardEvent{Key: events.KeyArrowDown})
		cb.OnInput(field.Type("x"))
		if cb.Expanded() {
			t.Fatalf("%s combobox opened", name)
		}
	}
}

func TestTreePopupExpandKeys(t *testing.T) {
	root := events.NewNode("tree", nil)
	items := tree.Build(root, []tree.Node[string]{
		{Value: "fruit", Text: "Fruit", Children: []tree.Node[string]{{Value: "apple", Text: "Apple"}}},
		{Value: "grains", Text: "Grains"},
	})
	tr := tree.New(tree.Inputs[string]{
		ID:        "produce",
		AllItems:  signal.Const(items),
		FocusMode: signal.Const(list.ActiveDescendant),
		Clock:     clock.NewManual(time.Unix(0, 0)),
	})
	field := combobox.NewTextField("input", nil)
	cb := combobox.New(combobox.Inputs[string]{
		Popup: signal.Const[combobox.Popup[string]](tr.Popup()),
		Input: signal.Const[combobox.InputElement](field),
	})
	key := func(k string) { cb.OnKeydown(&events.KeyboardEvent{Key: k, Target: field}) }

	key(events.KeyArrowDown)
	require.Equal(t, items[0].ID(), cb.ActiveDescendant())

	key(events.KeyArrowRight)
	assert.True(t, tr.IsExpanded(items[0]))
	key(events.KeyArrowRight)
	assert.Equal(t, items[1].ID(), cb.ActiveDescendant(), "moved into Apple")

	key(events.KeyArrowLeft)
	assert.Equal(t, items[0].ID(), cb.ActiveDescendant())

	key(events.KeyEnd)
	assert.Equal(t, items[2].ID(), cb.ActiveDescendant())
	ev := &events.KeyboardEvent{Key: events.KeyArrowRight, Target: field}
	cb.OnKeydown(ev)
	assert.False(t, ev.DefaultPrevented(), "a leaf leaves the caret key to the input")
}

func TestHighlightIgnoresMatchThatIsNotAPrefix(t *testing.T) {
	container := events.NewNode("combobox", nil)
	field := combobox.NewTextField("input", container)
	var options []*listbox.Option[string]
	for _, it := range []string{"Apple", "Apricot", "Banana"} {
		options = append(options, listbox.NewOption(listbox.OptionInputs[string]{
			ID: it, Value: it, Label: it, Element: events.NewNode(it, container),
		}))
	}
	in := listbox.Inputs[string]{ID: "fruits"}
	in.Items = signal.Const(options)
	in.FocusMode = signal.Const(list.ActiveDescendant)
	in.Clock = clock.NewManual(time.Unix(0, 0))
	lb := listbox.New(in)

	inputValue := signal.New("")
	contains := signal.NewComputed(func() *string {
		q := strings.ToLower(inputValue.Get())
		for _, o := range options {
			if q != "" && strings.Contains(strings.ToLower(o.Label()), q) {
				v := o.Value()
				return &v
			}
		}
		return nil
	})
	cb := combobox.New(combobox.Inputs[string]{
		Popup:      signal.Const(lb.Popup()),
		Input:      signal.Const[combobox.InputElement](field),
		Container:  signal.Const[events.Element](container),
		FilterMode: signal.Const(combobox.Highlight),
		InputValue: inputValue,
		FirstMatch: contains,
	})
	typeText := func(s string) {
		for _, r := range s {
			cb.OnInput(field.Type(string(r)))
			cb.OnFilter()
		}
	}

	typeText("a")
	assertField(t, field, "Apple", 1, 5)
	typeText("n")
	assertField(t, field, "an", 2, 2)
	assert.Equal(t, []string{"Banana"}, lb.Values().Get(), "the match is still selected")
	typeText("a")
	assertField(t, field, "ana", 3, 3)
	assert.Equal(t, "ana", inputValue.Get())

	cb.OnKeydown(&events.KeyboardEvent{Key: events.KeyEscape, Target: field})
	assert.False(t, cb.Expanded(), "no completion is shown, so escape closes")
}

func TestTypeInsertsAtCaret(t *testing.T) {
	f := combobox.NewTextField("input", nil)
	f.Type("a")
	f.Type("c")
	f.SetSelectionRange(1, 1)
	f.Type("b")
	assertField(t, f, "abc", 2, 2)

	f.SetSelectionRange(0, 2)
	f.Type("xy")
	assertField(t, f, "xyc", 2, 2)
}

func TestTreePopupHasNoFirstItemFallback(t *testing.T) {
	root := events.NewNode("tree", nil)
	items := tree.Build(root, []tree.Node[string]{
		{Value: "fruit", Text: "Fruit", Children: []tree.Node[string]{{Value: "apple", Text: "Apple"}}},
		{Value: "grains", Text: "Grains"},
	})
	newTree := func() *tree.Tree[string] {
		return tree.New(tree.Inputs[string]{
			ID:        "produce",
			AllItems:  signal.Const(items),
			FocusMode: signal.Const(list.ActiveDescendant),
			Clock:     clock.NewManual(time.Unix(0, 0)),
		})
	}

	tr := newTree()
	field := combobox.NewTextField("input", nil)
	cb := combobox.New(combobox.Inputs[string]{
		Popup:      signal.Const[combobox.Popup[string]](tr.Popup()),
		Input:      signal.Const[combobox.InputElement](field),
		FilterMode: signal.Const(combobox.AutoSelect),
	})
	cb.OnFocusIn(events.FocusEvent{Target: field})
	cb.OnInput(field.Type("z"))
	cb.OnFilter()
	assert.Empty(t, tr.Values().Get())
	assert.Equal(t, "", cb.ActiveDescendant())

	tr = newTree()
	apple := "apple"
	field = combobox.NewTextField("input", nil)
	cb = combobox.New(combobox.Inputs[string]{
		Popup:      signal.Const[combobox.Popup[string]](tr.Popup()),
		Input:      signal.Const[combobox.InputElement](field),
		FilterMode: signal.Const(combobox.AutoSelect),
		FirstMatch: signal.Const(&apple),
	})
	cb.OnFocusIn(events.FocusEvent{Target: field})
	cb.OnInput(field.Type("ap"))
	cb.OnFilter()
	assert.Equal(t, []string{"apple"}, tr.Values().Get())
	assert.True(t, tr.IsExpanded(items[0]), "focusing a hidden match opens its ancestors")
}
