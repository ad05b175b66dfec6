package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings the app handles before a pattern sees the key.
type keyMap struct {
	Quit     key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Menu     key.Binding
	Save     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),
		Menu:     key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "menu bar")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save state")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.NextPane, k.Menu, k.Save, k.Quit}
}

func (k keyMap) helpLine() string {
	var parts []string
	for _, b := range k.bindings() {
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// KeysMarkdown documents the key map of every pattern the demo hosts.
func KeysMarkdown() string {
	var b strings.Builder
	b.WriteString("# ariakit keys\n\n## Application\n\n| Key | Action |\n|---|---|\n")
	for _, kb := range defaultKeys().bindings() {
		h := kb.Help()
		b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
	}
	b.WriteString(patternKeys)
	return b.String()
}

const patternKeys = `
## Listbox and tree

| Key | Action |
|---|---|
| ` + "`↑` `↓`" + ` | previous / next item (left / right when horizontal, swapped in RTL) |
| ` + "`Home` `End`" + ` | first / last item |
| ` + "`Space` `Enter`" + ` | select (toggle in multi-select) |
| ` + "`Shift+↑` `Shift+↓`" + ` | extend the range (multi-select) |
| ` + "`Ctrl+A`" + ` | select or deselect all (multi-select) |
| ` + "`→` `←`" + ` | tree: expand or enter child / collapse or go to parent |
| ` + "`*`" + ` | tree: expand all siblings |
| any character | typeahead |

## Combobox

| Key | Action |
|---|---|
| ` + "`↓` `↑`" + ` | open on first / last item, then move through items |
| ` + "`Home` `End`" + ` | first / last item while open |
| ` + "`Enter`" + ` | commit the active item and close |
| ` + "`Escape`" + ` | drop the completion, then close and clear |
| ` + "`→` `←`" + ` | tree popup: expand / collapse the active item |

## Menu

| Key | Action |
|---|---|
| ` + "`←` `→`" + ` | menubar: move across menus; submenu: collapse / expand |
| ` + "`↓` `Enter` `Space`" + ` | open the submenu or activate the item |
| ` + "`Escape`" + ` | close one level |
`
