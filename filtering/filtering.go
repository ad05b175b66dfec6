// Package filtering holds the consumer-side helpers that narrow a popup's
// items to the typed text and compute a combobox's first match.
//
// Matching is case-insensitive. Prefix matching is what typeahead and
// highlight completion expect; fuzzy matching accepts any in-order
// subsequence and ranks contiguous and leading matches higher; Closest falls
// back to edit distance when nothing matches at all.
package filtering

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/ariakit/signal"
)

// Mode selects the matching rule.
type Mode int

const (
	Prefix Mode = iota
	Fuzzy
)

// ParseMode maps "prefix" and "fuzzy" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefix":
		return Prefix, true
	case "fuzzy":
		return Fuzzy, true
	}
	return Prefix, false
}

func (m Mode) String() string {
	if m == Fuzzy {
		return "fuzzy"
	}
	return "prefix"
}

// HasPrefix reports whether text starts with query, ignoring case.
func HasPrefix(text, query string) bool {
	return strings.HasPrefix(strings.ToLower(text), strings.ToLower(query))
}

// Score reports whether query is an in-order subsequence of text and how
// well it matches. An empty query matches everything with score 0.
func Score(text, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	textLower := []rune(strings.ToLower(text))
	queryLower := []rune(strings.ToLower(query))

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for _, ch := range queryLower {
		found := false
		for j := searchFrom; j < len(textLower); j++ {
			if textLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

type scored[T any] struct {
	item  T
	score int
	index int
}

// Filter returns the items whose text matches query. Prefix mode keeps the
// input order; fuzzy mode orders by score, then by input order.
func Filter[T any](items []T, text func(T) string, query string, mode Mode) []T {
	q := strings.TrimSpace(query)
	if q == "" {
		return append([]T(nil), items...)
	}
	if mode == Prefix {
		var out []T
		for _, it := range items {
			if HasPrefix(text(it), q) {
				out = append(out, it)
			}
		}
		return out
	}

	var rows []scored[T]
	for i, it := range items {
		if ok, s := Score(text(it), q); ok {
			rows = append(rows, scored[T]{item: it, score: s, index: i})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].index < rows[j].index
	})
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.item
	}
	return out
}

// Closest returns the item whose text has the smallest edit distance to
// query, provided the distance is at most maxDistance.
func Closest[T any](items []T, text func(T) string, query string, maxDistance int) (T, bool) {
	var best T
	bestDist := -1
	q := strings.ToLower(strings.TrimSpace(query))
	for _, it := range items {
		d := levenshtein.ComputeDistance(strings.ToLower(text(it)), q)
		if d > maxDistance {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = it, d
		}
	}
	return best, bestDist >= 0
}

// FirstMatch derives a combobox first-match cell: the first prefix match of
// the query, else the best fuzzy match, else the closest item within
// maxDistance edits. It yields nil for an empty query or no match.
func FirstMatch[V comparable, T any](items signal.Signal[[]T], text func(T) string, value func(T) V, query signal.Signal[string], maxDistance int) signal.Signal[*V] {
	return signal.NewComputed(func() *V {
		q := strings.TrimSpace(query.Get())
		if q == "" {
			return nil
		}
		all := items.Get()
		pick := func(it T) *V {
			v := value(it)
			return &v
		}
		if m := Filter(all, text, q, Prefix); len(m) > 0 {
			return pick(m[0])
		}
		if m := Filter(all, text, q, Fuzzy); len(m) > 0 {
			return pick(m[0])
		}
		if it, ok := Closest(all, text, q, maxDistance); ok {
			return pick(it)
		}
		return nil
	})
}
