package filtering

import (
	"testing"

	"github.com/jask/ariakit/signal"
)

type fruit struct {
	id   int
	name string
}

func name(f fruit) string { return f.name }

var basket = []fruit{
	{1, "Apple"}, {2, "Apricot"}, {3, "Banana"}, {4, "Blackberry"}, {5, "Blueberry"}, {6, "Cherry"},
}

func names(items []fruit) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		text, query string
		ok          bool
	}{
		{"Blueberry", "", true},
		{"Blueberry", "bby", true},
		{"Blueberry", "BLUE", true},
		{"Blueberry", "yb", false},
		{"Blueberry", "blueberryx", false},
	}
	for _, tt := range tests {
		if ok, _ := Score(tt.text, tt.query); ok != tt.ok {
			t.Fatalf("Score(%q, %q) ok = %v, want %v", tt.text, tt.query, ok, tt.ok)
		}
	}

	_, leading := Score("Blueberry", "bl")
	_, inner := Score("Blackberry", "be")
	if leading <= inner {
		t.Fatalf("leading contiguous match %d should outrank inner match %d", leading, inner)
	}
	_, exact := Score("Apple", "apple")
	_, prefix := Score("Apples", "apple")
	if exact <= prefix {
		t.Fatalf("exact match %d should outrank prefix %d", exact, prefix)
	}
}

func TestFilterPrefixKeepsOrder(t *testing.T) {
	got := names(Filter(basket, name, "b", Prefix))
	want := []string{"Banana", "Blackberry", "Blueberry"}
	if len(got) != len(want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Filter = %v, want %v", got, want)
		}
	}
	if n := len(Filter(basket, name, "  ", Prefix)); n != len(basket) {
		t.Fatalf("blank query kept %d items, want all", n)
	}
}

func TestFilterFuzzyRanks(t *testing.T) {
	got := names(Filter(basket, name, "rry", Fuzzy))
	if len(got) != 3 {
		t.Fatalf("Filter = %v, want three berries", got)
	}
	if got[0] != "Blackberry" {
		t.Fatalf("ties keep input order, got %v", got)
	}
}

func TestClosest(t *testing.T) {
	got, ok := Closest(basket, name, "Cherri", 2)
	if !ok || got.name != "Cherry" {
		t.Fatalf("Closest = %v, %v", got, ok)
	}
	if _, ok := Closest(basket, name, "zzzzzz", 2); ok {
		t.Fatalf("expected no match within distance")
	}
}

func TestFirstMatch(t *testing.T) {
	query := signal.New("")
	fm := FirstMatch(signal.Const(basket), name, func(f fruit) int { return f.id }, query, 2)

	if fm.Get() != nil {
		t.Fatalf("empty query should have no match")
	}
	cases := []struct {
		query string
		want  int
	}{
		{"ap", 1},
		{"apr", 2},
		{"bry", 4},
		{"Chery", 6},
	}
	for _, c := range cases {
		query.Set(c.query)
		got := fm.Get()
		if got == nil || *got != c.want {
			t.Fatalf("FirstMatch(%q) = %v, want %d", c.query, got, c.want)
		}
	}
	query.Set("zzzzzz")
	if fm.Get() != nil {
		t.Fatalf("expected nil for no match")
	}
}
