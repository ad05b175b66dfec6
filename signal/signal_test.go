package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritableSetNotifiesInOrder(t *testing.T) {
	s := New(1)
	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })
	s.Subscribe(func(v int) { got = append(got, v*10) })

	s.Set(2)
	s.Update(func(v int) int { return v + 1 })

	require.Equal(t, 3, s.Get())
	assert.Equal(t, []int{2, 20, 3, 30}, got)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New("a")
	calls := 0
	unsub := s.Subscribe(func(string) { calls++ })
	s.Set("b")
	unsub()
	unsub()
	s.Set("c")
	assert.Equal(t, 1, calls)
}

func TestWithEqualSkipsRedundantWrites(t *testing.T) {
	s := New(5, WithEqual(func(a, b int) bool { return a == b }))
	calls := 0
	s.Subscribe(func(int) { calls++ })
	s.Set(5)
	s.Set(6)
	assert.Equal(t, 1, calls)
}

func TestComputedRecomputesOnlyAfterWrites(t *testing.T) {
	base := New(2)
	runs := 0
	double := NewComputed(func() int {
		runs++
		return base.Get() * 2
	})

	require.Equal(t, 4, double.Get())
	require.Equal(t, 4, double.Get())
	assert.Equal(t, 1, runs)

	base.Set(3)
	require.Equal(t, 6, double.Get())
	assert.Equal(t, 2, runs)
}

func TestComputedChains(t *testing.T) {
	items := New([]string{"a", "b", "c"})
	count := NewComputed(func() int { return len(items.Get()) })
	label := NewComputed(func() string {
		if count.Get() > 2 {
			return "many"
		}
		return "few"
	})
	assert.Equal(t, "many", label.Get())
	items.Set([]string{"a"})
	assert.Equal(t, "few", label.Get())
}

func TestBatchDefersAndCoalesces(t *testing.T) {
	first := New("")
	last := New("")
	var seen []string
	first.Subscribe(func(v string) { seen = append(seen, "first="+v+" last="+last.Get()) })
	last.Subscribe(func(v string) { seen = append(seen, "last="+v) })

	Batch(func() {
		first.Set("Bo")
		first.Set("Bob")
		last.Set("Smith")
		assert.Empty(t, seen, "no subscriber may run mid-batch")
		assert.Equal(t, "Bob", first.Get(), "reads see latest writes")
	})

	assert.Equal(t, []string{"first=Bob last=Smith", "last=Smith"}, seen)
}

func TestNestedBatchFlushesOnce(t *testing.T) {
	s := New(0)
	calls := 0
	s.Subscribe(func(int) { calls++ })
	Batch(func() {
		s.Set(1)
		Batch(func() { s.Set(2) })
		assert.Equal(t, 0, calls)
	})
	assert.Equal(t, 1, calls)
}

func TestConstFuncAndOr(t *testing.T) {
	assert.Equal(t, 7, Const(7).Get())
	assert.Equal(t, "x", Func[string](func() string { return "x" }).Get())
	assert.True(t, Or[bool](nil, true).Get())
	assert.False(t, Or[bool](Const(false), true).Get())
}
