package tree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/clock"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

var produce = []Node[string]{
	{Value: "fruit", Text: "Fruit", Children: []Node[string]{
		{Value: "apple", Text: "Apple"},
		{Value: "banana", Text: "Banana"},
		{Value: "cantaloupe", Text: "Cantaloupe"},
	}},
	{Value: "vegetables", Text: "Vegetables", Children: []Node[string]{
		{Value: "broccoli", Text: "Broccoli"},
		{Value: "carrot", Text: "Carrot"},
	}},
	{Value: "grains", Text: "Grains", Children: []Node[string]{
		{Value: "rice", Text: "Rice"},
		{Value: "wheat", Text: "Wheat"},
	}},
}

type harness struct {
	tree   *Tree[string]
	items  []*Item[string]
	root   *events.Node
	values *signal.Writable[[]string]
}

func newHarness(t *testing.T, nodes []Node[string], mutate func(*Inputs[string])) *harness {
	t.Helper()
	h := &harness{root: events.NewNode("tree", nil), values: signal.New[[]string](nil)}
	h.items = Build(h.root, nodes)
	in := Inputs[string]{
		ID:       "produce",
		AllItems: signal.Const(h.items),
		Values:   h.values,
		Clock:    clock.NewManual(time.Unix(0, 0)),
	}
	if mutate != nil {
		mutate(&in)
	}
	h.tree = New(in)
	return h
}

func (h *harness) key(key string, mod events.Modifier) {
	h.tree.OnKeydown(&events.KeyboardEvent{Key: key, Mod: mod, Target: h.root})
}

func (h *harness) byText(text string) *Item[string] {
	for _, it := range h.items {
		if it.Text() == text {
			return it
		}
	}
	return nil
}

func (h *harness) visible() []string {
	var out []string
	for _, it := range h.tree.VisibleItems() {
		out = append(out, it.Text())
	}
	return out
}

func (h *harness) active() string {
	if it := h.tree.List.ActiveItem(); it != nil {
		return it.Text()
	}
	return ""
}

func TestArrowDownThenArrowRightExpandsFruit(t *testing.T) {
	h := newHarness(t, produce, nil)
	require.Equal(t, []string{"Fruit", "Vegetables", "Grains"}, h.visible())

	h.key(events.KeyArrowDown, events.ModNone)
	h.key(events.KeyArrowRight, events.ModNone)

	assert.Equal(t, "Fruit", h.active())
	assert.True(t, h.tree.IsExpanded(h.byText("Fruit")))
	assert.Equal(t, []string{"Fruit", "Apple", "Banana", "Cantaloupe", "Vegetables", "Grains"}, h.visible())

	h.key(events.KeyArrowRight, events.ModNone)
	assert.Equal(t, "Apple", h.active(), "second expand key moves into the children")
	assert.Equal(t, []string{"apple"}, h.values.Get())

	h.key(events.KeyArrowLeft, events.ModNone)
	assert.Equal(t, "Fruit", h.active(), "collapse key on a leaf moves to the parent")
	h.key(events.KeyArrowLeft, events.ModNone)
	assert.False(t, h.tree.IsExpanded(h.byText("Fruit")))
	h.key(events.KeyArrowLeft, events.ModNone)
	assert.Equal(t, "Fruit", h.active(), "collapse at the top level is a no-op")
}

func TestThreeLevelVisibility(t *testing.T) {
	h := newHarness(t, []Node[string]{
		{Value: "a", Text: "A", Children: []Node[string]{
			{Value: "b", Text: "B", Children: []Node[string]{
				{Value: "c", Text: "C"},
			}},
		}},
	}, nil)
	a, b, c := h.byText("A"), h.byText("B"), h.byText("C")

	require.True(t, h.tree.Expand(a))
	require.True(t, h.tree.Expand(b))
	assert.Equal(t, []string{"A", "B", "C"}, h.visible())
	assert.Equal(t, 1, h.tree.Level(a))
	assert.Equal(t, 3, h.tree.Level(c))

	h.tree.Collapse(a)
	assert.Equal(t, []string{"A"}, h.visible())
	assert.False(t, h.tree.IsVisible(b))
	assert.False(t, h.tree.IsVisible(c))
	assert.True(t, h.tree.IsExpanded(b), "descendant state is kept while hidden")

	h.tree.Expand(a)
	assert.Equal(t, []string{"A", "B", "C"}, h.visible())
}

func TestCollapsingAncestorMovesActive(t *testing.T) {
	h := newHarness(t, produce, nil)
	fruit := h.byText("Fruit")
	h.tree.Expand(fruit)
	h.tree.List.Goto(h.byText("Banana"), list.Options{})

	h.tree.Collapse(fruit)
	assert.Equal(t, "Fruit", h.active())
}

func TestSingleExpansionClosesSiblings(t *testing.T) {
	h := newHarness(t, produce, func(in *Inputs[string]) {
		in.MultiExpandable = signal.Const(false)
	})
	h.tree.Expand(h.byText("Fruit"))
	h.tree.Expand(h.byText("Grains"))
	assert.Equal(t, []string{"Fruit", "Vegetables", "Grains", "Rice", "Wheat"}, h.visible())
}

func TestExpandSiblings(t *testing.T) {
	h := newHarness(t, produce, nil)
	h.key(events.KeyArrowDown, events.ModNone)
	h.key("*", events.ModShift)
	assert.Len(t, h.visible(), 10)
	assert.Equal(t, "Fruit", h.active(), "focus stays put")
}

func TestPositionInSet(t *testing.T) {
	h := newHarness(t, produce, nil)
	banana := h.byText("Banana")
	assert.Equal(t, 3, h.tree.SetSize(banana))
	assert.Equal(t, 2, h.tree.PosInSet(banana))
	assert.Equal(t, 3, h.tree.SetSize(h.byText("Grains")))
	assert.Equal(t, 3, h.tree.PosInSet(h.byText("Grains")))
	assert.Equal(t, "Fruit", h.tree.Parent(banana).Text())
	assert.Len(t, h.tree.Children(h.byText("Vegetables")), 2)
}

func TestExplicitMultiRangeOverVisible(t *testing.T) {
	h := newHarness(t, produce, func(in *Inputs[string]) {
		in.Multi = signal.Const(true)
		in.SelectionMode = signal.Const(list.Explicit)
	})
	h.tree.Expand(h.byText("Fruit"))
	h.key(events.KeyArrowDown, events.ModNone)
	h.key(events.KeyArrowDown, events.ModNone)
	h.key(events.KeySpace, events.ModNone)
	require.Equal(t, []string{"apple"}, h.values.Get())

	h.key(events.KeyShift, events.ModShift)
	h.key(events.KeyArrowDown, events.ModShift)
	h.key(events.KeyArrowDown, events.ModShift)
	assert.ElementsMatch(t, []string{"apple", "banana", "cantaloupe"}, h.values.Get())
}

func TestNavModeReportsCurrent(t *testing.T) {
	h := newHarness(t, produce, func(in *Inputs[string]) {
		in.Nav = signal.Const(true)
	})
	h.key(events.KeyArrowDown, events.ModNone)
	fruit := h.byText("Fruit")
	assert.True(t, h.tree.IsCurrent(fruit))
	assert.False(t, h.tree.IsSelected(fruit))
}

func TestClickTogglesExpansion(t *testing.T) {
	h := newHarness(t, produce, nil)
	veg := h.byText("Vegetables")
	h.tree.OnPointerdown(&events.PointerEvent{Target: veg.Element()})
	assert.Equal(t, "Vegetables", h.active())
	assert.True(t, h.tree.IsExpanded(veg))
	assert.Equal(t, []string{"vegetables"}, h.values.Get())

	h.tree.OnPointerdown(&events.PointerEvent{Target: veg.Element()})
	assert.False(t, h.tree.IsExpanded(veg))
}

func TestExpandedIDsRoundTrip(t *testing.T) {
	h := newHarness(t, produce, nil)
	h.tree.ExpandAll()
	ids := h.tree.ExpandedIDs()
	require.Len(t, ids, 3)

	again := newHarness(t, produce, nil)
	again.tree.SetExpandedIDs(append(ids, "missing"))
	assert.Equal(t, ids, again.tree.ExpandedIDs(), "Build ids are stable")

	again.tree.CollapseAll()
	assert.Empty(t, again.tree.ExpandedIDs())
}

func TestTabIndexSkipsHidden(t *testing.T) {
	h := newHarness(t, produce, nil)
	h.tree.SetDefaultState()
	assert.Equal(t, 0, h.tree.ItemTabIndex(h.byText("Fruit")))
	assert.Equal(t, -1, h.tree.ItemTabIndex(h.byText("Apple")))
}

func TestPopupFocusOpensAncestors(t *testing.T) {
	h := newHarness(t, produce, nil)
	p := h.tree.Popup()
	p.Focus(h.byText("Carrot").ID())
	assert.Equal(t, "Carrot", h.active())
	assert.True(t, h.tree.IsExpanded(h.byText("Vegetables")))

	assert.False(t, p.IsItemExpandable())
	assert.True(t, p.IsItemCollapsible())
	p.CollapseItem()
	assert.Equal(t, "Vegetables", h.active())
	p.CollapseItem()
	assert.False(t, h.tree.IsExpanded(h.byText("Vegetables")))
}

func TestDisabledTree(t *testing.T) {
	h := newHarness(t, produce, func(in *Inputs[string]) {
		in.Disabled = signal.Const(true)
	})
	h.key(events.KeyArrowDown, events.ModNone)
	assert.Equal(t, "", h.active())
	assert.False(t, h.tree.Expand(h.byText("Fruit")))
}
