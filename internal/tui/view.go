package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/patterns/listbox"
	"github.com/jask/ariakit/patterns/tree"
)

// zone maps a rendered cell range to the element drawn there.
type zone struct {
	y, x0, x1 int
	el        events.Element
}

// block is a pane body under construction. Zones are relative to it.
type block struct {
	lines []string
	zones []zone
}

func (b *block) line(s string, el events.Element) {
	if el != nil {
		b.zones = append(b.zones, zone{y: len(b.lines), x0: 0, x1: 1 << 16, el: el})
	}
	b.lines = append(b.lines, s)
}

// segments writes one line made of several clickable parts.
func (b *block) segments(parts []string, els []events.Element, sep string) {
	x, y := 0, len(b.lines)
	for i, p := range parts {
		w := xansi.StringWidth(p)
		b.zones = append(b.zones, zone{y: y, x0: x, x1: x + w, el: els[i]})
		x += w + xansi.StringWidth(sep)
	}
	b.lines = append(b.lines, strings.Join(parts, sep))
}

// resolve returns the element under the cell at x, y.
func (a *App) resolve(x, y int) events.Element {
	for _, z := range a.zones {
		if z.y == y && x >= z.x0 && x < z.x1 {
			return z.el
		}
	}
	return nil
}

func (a *App) View() string {
	a.zones = a.zones[:0]
	var out []string
	top := 0
	for _, p := range []pane{paneMenu, paneCombo, paneTree} {
		var b block
		switch p {
		case paneMenu:
			a.renderMenu(&b)
		case paneCombo:
			a.renderCombobox(&b)
		default:
			a.renderTree(&b)
		}
		inner := a.width - 4
		for i := range b.lines {
			b.lines[i] = fit(b.lines[i], inner)
		}
		boxed := a.paneStyle(p).Render(strings.Join(b.lines, "\n"))
		// border row on top, border and padding on the left
		for _, z := range b.zones {
			z.y += top + 1
			z.x0 += 2
			z.x1 += 2
			a.zones = append(a.zones, z)
		}
		top += lipgloss.Height(boxed)
		out = append(out, boxed)
	}
	footer := a.theme.help.Render(a.keys.helpLine())
	if a.status != "" {
		footer += "\n" + a.theme.status.Render(a.status)
	}
	out = append(out, footer)
	return strings.Join(out, "\n")
}

func (a *App) renderMenu(b *block) {
	path := a.menuRoot.Path()
	var parts []string
	var els []events.Element
	for _, it := range a.bar.Items() {
		text := " " + it.Text() + " "
		if a.focus == paneMenu && a.bar.List.IsActive(it) {
			text = a.theme.active.Render(text)
		}
		parts = append(parts, text)
		els = append(els, it.Element())
	}
	b.segments(parts, els, " ")

	for depth, m := range path[1:] {
		indent := strings.Repeat("  ", depth+1)
		for _, it := range m.Items() {
			text := it.Text()
			if it.HasPopup() {
				text += " ▸"
			}
			if m.List.IsActive(it) {
				text = a.theme.active.Render(text)
			}
			b.line(indent+text, it.Element())
		}
	}
}

func (a *App) renderCombobox(b *block) {
	b.line(a.theme.title.Render("Find ("+a.filterMode.Get().String()+")"), nil)
	b.line(a.field.view(a.theme.sel), a.field)
	if !a.cb.Expanded() {
		if vals := a.lb.Values().Get(); len(vals) > 0 {
			b.line("selected: "+strings.Join(vals, ", "), nil)
		}
		return
	}
	opts := a.lb.Options()
	if len(opts) == 0 {
		b.line(a.theme.help.Render("  no matches"), nil)
	}
	for _, o := range opts {
		b.line(a.optionLine(o), o.Element())
	}
}

func (a *App) optionLine(o *listbox.Option[string]) string {
	marker := "  "
	if a.lb.IsSelected(o) {
		marker = "✓ "
	}
	text := o.Label()
	switch {
	case o.Disabled():
		text = a.theme.disabled.Render(text)
	case a.lb.IsActive(o):
		text = a.theme.active.Render(text)
	}
	return marker + text
}

func (a *App) renderTree(b *block) {
	b.line(a.theme.title.Render("Catalog"), nil)
	for _, it := range a.tr.VisibleItems() {
		b.line(a.treeLine(it), it.Element())
	}
}

func (a *App) treeLine(it *tree.Item[string]) string {
	indent := strings.Repeat("  ", a.tr.Level(it)-1)
	marker := "  "
	if a.tr.IsExpandable(it) {
		marker = "▸ "
		if a.tr.IsExpanded(it) {
			marker = "▾ "
		}
	}
	check := " "
	if a.tr.IsSelected(it) || a.tr.IsCurrent(it) {
		check = "●"
	}
	text := it.Text()
	switch {
	case it.Disabled():
		text = a.theme.disabled.Render(text)
	case a.focus == paneTree && a.tr.IsActive(it):
		text = a.theme.active.Render(text)
	case a.tr.IsSelected(it):
		text = a.theme.selected.Render(text)
	}
	return indent + marker + check + " " + text
}
