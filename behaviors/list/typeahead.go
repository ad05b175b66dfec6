package list

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jask/ariakit/clock"
)

// Typeahead finds items by the text typed in quick succession.
//
// The buffer survives TypeaheadDelay after the last character. The search
// always starts after the item that was active when the current buffer
// began, so typing "b", "l" refines rather than restarts.
type Typeahead[V comparable, T Entry[V]] struct {
	in    Inputs[V, T]
	focus *Focus[V, T]

	mu    sync.Mutex
	query string
	start int
	timer clock.Timer
}

// NewTypeahead creates the typeahead behavior.
func NewTypeahead[V comparable, T Entry[V]](in Inputs[V, T], focus *Focus[V, T]) *Typeahead[V, T] {
	return &Typeahead[V, T]{in: in.withDefaults(), focus: focus, start: -1}
}

// IsTyping reports whether a search buffer is live.
func (t *Typeahead[V, T]) IsTyping() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.query != ""
}

// Query returns the current buffer.
func (t *Typeahead[V, T]) Query() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.query
}

// Search appends char to the buffer and focuses the first matching item.
// It reports whether the active item changed.
func (t *Typeahead[V, T]) Search(char string) bool {
	if utf8.RuneCountInString(char) != 1 {
		return false
	}

	t.mu.Lock()
	if t.query == "" && char == " " {
		t.mu.Unlock()
		return false
	}
	if t.query == "" {
		t.start = t.focus.ActiveIndex()
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.query += strings.ToLower(char)
	query, start := t.query, t.start
	t.timer = t.in.Clock.AfterFunc(t.in.TypeaheadDelay.Get(), t.Reset)
	t.mu.Unlock()

	item, ok := t.find(query, start)
	if !ok {
		return false
	}
	return t.focus.Focus(item)
}

// Reset clears the buffer and cancels the pending expiry.
func (t *Typeahead[V, T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.query = ""
	t.start = -1
}

func (t *Typeahead[V, T]) find(query string, start int) (T, bool) {
	var zero T
	items := t.in.Items.Get()
	n := len(items)
	for k := 1; k <= n; k++ {
		it := items[((start+k)%n+n)%n]
		if !t.focus.IsFocusable(it) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(it.SearchTerm()), query) {
			return it, true
		}
	}
	return zero, false
}
