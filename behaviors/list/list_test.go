package list

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/ariakit/clock"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

type testItem struct {
	id         string
	value      string
	disabled   bool
	selectable bool
	el         *events.Node
}

func (i *testItem) ID() string              { return i.id }
func (i *testItem) Value() string           { return i.value }
func (i *testItem) Disabled() bool          { return i.disabled }
func (i *testItem) Selectable() bool        { return i.selectable }
func (i *testItem) SearchTerm() string      { return i.value }
func (i *testItem) Element() events.Element { return i.el }

type fixture struct {
	items  []*testItem
	active *signal.Writable[*testItem]
	values *signal.Writable[[]string]
	clk    *clock.Manual
	list   *List[string, *testItem]
}

func newFixture(t *testing.T, names []string, mutate func(*Inputs[string, *testItem])) *fixture {
	t.Helper()
	f := &fixture{
		active: signal.New[*testItem](nil),
		values: signal.New[[]string](nil),
		clk:    clock.NewManual(time.Unix(0, 0)),
	}
	for _, n := range names {
		f.items = append(f.items, &testItem{id: n, value: n, selectable: true, el: events.NewNode(n, nil)})
	}
	in := Inputs[string, *testItem]{
		Items:      signal.Func[[]*testItem](func() []*testItem { return f.items }),
		ActiveItem: f.active,
		Values:     f.values,
		Clock:      f.clk,
	}
	if mutate != nil {
		mutate(&in)
	}
	f.list = New(in)
	return f
}

func (f *fixture) activeID() string {
	if a := f.active.Get(); a != nil {
		return a.id
	}
	return ""
}

func TestNextWrapsAndClamps(t *testing.T) {
	tests := []struct {
		name string
		wrap bool
		want []string
	}{
		{name: "wrap", wrap: true, want: []string{"a", "b", "c", "a"}},
		{name: "clamp", wrap: false, want: []string{"a", "b", "c", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, []string{"a", "b", "c"}, func(in *Inputs[string, *testItem]) {
				in.Wrap = signal.Const(tt.wrap)
			})
			for i, want := range tt.want {
				f.list.Next(Options{})
				if got := f.activeID(); got != want {
					t.Fatalf("step %d: active = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestPrevFromNothingStartsAtEnd(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, nil)
	require.True(t, f.list.Prev(Options{}))
	assert.Equal(t, "c", f.activeID())
	assert.Equal(t, -1, f.list.Focus.PreviousActiveIndex())
}

func TestDisabledItemsAndSoftDisabled(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, nil)
	f.items[1].disabled = true

	f.list.First(Options{})
	f.list.Next(Options{})
	assert.Equal(t, "b", f.activeID(), "soft-disabled items stay focusable")

	hard := newFixture(t, []string{"a", "b", "c"}, func(in *Inputs[string, *testItem]) {
		in.SoftDisabled = signal.Const(false)
	})
	hard.items[1].disabled = true
	hard.list.First(Options{})
	hard.list.Next(Options{})
	assert.Equal(t, "c", hard.activeID())
}

func TestDisabledListIsInert(t *testing.T) {
	f := newFixture(t, []string{"a", "b"}, func(in *Inputs[string, *testItem]) {
		in.Disabled = signal.Const(true)
	})
	assert.False(t, f.list.Next(Options{SelectOne: true}))
	assert.False(t, f.list.Search("a", Options{}))
	assert.Nil(t, f.active.Get())
	assert.Empty(t, f.values.Get())
	assert.Equal(t, 0, f.list.TabIndex())
	assert.Equal(t, -1, f.list.ItemTabIndex(f.items[0]))

	all := newFixture(t, []string{"a", "b"}, nil)
	for _, it := range all.items {
		it.disabled = true
	}
	assert.True(t, all.list.Disabled())
	assert.False(t, all.list.First(Options{}))
}

func TestTabIndex(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, nil)
	assert.Equal(t, -1, f.list.TabIndex())
	assert.Equal(t, 0, f.list.ItemTabIndex(f.items[0]), "first focusable is the tab stop")

	f.list.Last(Options{})
	assert.Equal(t, -1, f.list.ItemTabIndex(f.items[0]))
	assert.Equal(t, 0, f.list.ItemTabIndex(f.items[2]))

	ad := newFixture(t, []string{"a", "b"}, func(in *Inputs[string, *testItem]) {
		in.FocusMode = signal.Const(ActiveDescendant)
	})
	ad.list.Next(Options{})
	assert.Equal(t, 0, ad.list.TabIndex())
	assert.Equal(t, -1, ad.list.ItemTabIndex(ad.items[0]))
	assert.Equal(t, "a", ad.list.ActiveDescendant())
}

func TestRovingFocusesElement(t *testing.T) {
	f := newFixture(t, []string{"a", "b"}, nil)
	var focused string
	for _, it := range f.items {
		it.el.OnFocus(func(n *events.Node) { focused = n.ElementID() })
	}
	f.list.Last(Options{})
	assert.Equal(t, "b", focused)
}

func TestSingleSelectionReplaces(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, nil)
	f.list.Next(Options{SelectOne: true})
	f.list.Next(Options{SelectOne: true})
	assert.Equal(t, []string{"b"}, f.values.Get())

	f.list.Toggle(nil)
	assert.Empty(t, f.values.Get())
}

func TestRangeSelection(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c", "d", "e"}, func(in *Inputs[string, *testItem]) {
		in.Multi = signal.Const(true)
	})
	f.list.Goto(f.items[1], Options{SelectOne: true})
	require.Equal(t, []string{"b"}, f.values.Get())
	require.Equal(t, 1, f.list.Selection.RangeAnchor())

	f.list.Next(Options{SelectRange: true})
	f.list.Next(Options{SelectRange: true})
	assert.ElementsMatch(t, []string{"b", "c", "d"}, f.values.Get())

	f.list.Prev(Options{SelectRange: true})
	assert.ElementsMatch(t, []string{"b", "c"}, f.values.Get())

	// Crossing the anchor drops the old side.
	f.list.Prev(Options{SelectRange: true})
	f.list.Prev(Options{SelectRange: true})
	assert.ElementsMatch(t, []string{"a", "b"}, f.values.Get())
	assert.Equal(t, 1, f.list.Selection.RangeAnchor())
}

func TestSelectRangeDoesNotWrap(t *testing.T) {
	f := newFixture(t, []string{"a", "b"}, func(in *Inputs[string, *testItem]) {
		in.Multi = signal.Const(true)
	})
	f.list.Last(Options{SelectOne: true})
	assert.False(t, f.list.Next(Options{SelectRange: true}))
	assert.Equal(t, "b", f.activeID())
}

func TestKeepAnchor(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, func(in *Inputs[string, *testItem]) {
		in.Multi = signal.Const(true)
	})
	f.list.First(Options{SelectOne: true})
	f.list.Last(Options{Toggle: true, KeepAnchor: true})
	assert.Equal(t, 0, f.list.Selection.RangeAnchor())
	assert.ElementsMatch(t, []string{"a", "c"}, f.values.Get())
}

func TestDeselectAllKeepsDisabled(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, func(in *Inputs[string, *testItem]) {
		in.Multi = signal.Const(true)
	})
	f.values.Set([]string{"a", "b", "gone"})
	f.items[1].disabled = true

	f.list.DeselectAll()
	assert.Equal(t, []string{"b"}, f.values.Get())
}

func TestToggleAll(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, func(in *Inputs[string, *testItem]) {
		in.Multi = signal.Const(true)
	})
	f.items[2].selectable = false

	f.list.ToggleAll()
	assert.ElementsMatch(t, []string{"a", "b"}, f.values.Get())
	f.list.ToggleAll()
	assert.Empty(t, f.values.Get())
}

func TestSelectAllSingleIsNoop(t *testing.T) {
	f := newFixture(t, []string{"a", "b"}, nil)
	f.list.SelectAll()
	assert.Empty(t, f.values.Get())
}

func TestTypeaheadRefinesAndExpires(t *testing.T) {
	f := newFixture(t, []string{"apple", "banana", "blueberry", "cherry"}, nil)

	require.True(t, f.list.Search("b", Options{}))
	assert.Equal(t, "banana", f.activeID())
	require.True(t, f.list.Search("l", Options{}))
	assert.Equal(t, "blueberry", f.activeID())
	assert.True(t, f.list.IsTyping())
	assert.Equal(t, "bl", f.list.Typeahead.Query())

	f.clk.Advance(400 * time.Millisecond)
	assert.True(t, f.list.IsTyping(), "buffer survives until the delay passes")

	f.clk.Advance(DefaultTypeaheadDelay)
	assert.False(t, f.list.IsTyping())
	assert.Equal(t, 0, f.clk.Pending())

	// Expiry is idempotent.
	f.list.Typeahead.Reset()
	f.clk.Advance(time.Second)
	assert.False(t, f.list.IsTyping())

	require.True(t, f.list.Search("c", Options{}))
	assert.Equal(t, "cherry", f.activeID())
}

func TestTypeaheadTimerRestartsPerKey(t *testing.T) {
	f := newFixture(t, []string{"apple", "apricot"}, nil)
	f.list.Search("a", Options{})
	f.clk.Advance(300 * time.Millisecond)
	f.list.Search("p", Options{})
	f.clk.Advance(300 * time.Millisecond)
	assert.True(t, f.list.IsTyping())
	assert.Equal(t, 1, f.clk.Pending())
}

func TestTypeaheadSpaceOnlyWhileTyping(t *testing.T) {
	f := newFixture(t, []string{"ice cream", "ice tea"}, nil)
	assert.False(t, f.list.Search(" ", Options{}))
	assert.False(t, f.list.IsTyping())

	f.list.Search("i", Options{})
	f.list.Search("c", Options{})
	f.list.Search("e", Options{})
	f.list.Search(" ", Options{})
	f.list.Search("t", Options{})
	assert.Equal(t, "ice tea", f.activeID())
}

func TestTypeaheadSelectOne(t *testing.T) {
	f := newFixture(t, []string{"apple", "banana"}, nil)
	f.list.Search("b", Options{SelectOne: true})
	assert.Equal(t, []string{"banana"}, f.values.Get())
}

func TestKeysFollowOrientation(t *testing.T) {
	tests := []struct {
		orient     Orientation
		dir        TextDirection
		prev, next string
	}{
		{Vertical, LTR, events.KeyArrowUp, events.KeyArrowDown},
		{Vertical, RTL, events.KeyArrowUp, events.KeyArrowDown},
		{Horizontal, LTR, events.KeyArrowLeft, events.KeyArrowRight},
		{Horizontal, RTL, events.KeyArrowRight, events.KeyArrowLeft},
	}
	for _, tt := range tests {
		f := newFixture(t, nil, func(in *Inputs[string, *testItem]) {
			in.Orientation = signal.Const(tt.orient)
			in.TextDirection = signal.Const(tt.dir)
		})
		if got := f.list.PrevKey(); got != tt.prev {
			t.Fatalf("%v/%v prev = %q, want %q", tt.orient, tt.dir, got, tt.prev)
		}
		if got := f.list.NextKey(); got != tt.next {
			t.Fatalf("%v/%v next = %q, want %q", tt.orient, tt.dir, got, tt.next)
		}
	}
}
