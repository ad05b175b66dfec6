package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/filtering"
	"github.com/jask/ariakit/internal/config"
	"github.com/jask/ariakit/internal/database/repository"
	"github.com/jask/ariakit/patterns/combobox"
	"github.com/jask/ariakit/patterns/listbox"
	"github.com/jask/ariakit/patterns/menu"
	"github.com/jask/ariakit/patterns/tree"
	"github.com/jask/ariakit/signal"
)

const (
	treeWidgetID  = "catalog-tree"
	comboWidgetID = "catalog-combobox"
)

// App is the demo: a menubar, a combobox over the catalog leaves and a tree
// over the whole catalog, all driven by the interaction patterns.
type App struct {
	ctx    context.Context
	cfg    config.Config
	repos  Repos
	keys   keyMap
	theme  theme
	width  int
	focus  pane
	status string

	root      *events.Node
	menuNode  *events.Node
	comboNode *events.Node
	popupNode *events.Node
	treeNode  *events.Node

	menuRoot *menu.Root[string]
	bar      *menu.Menu[string]
	action   string

	field      *field
	options    *signal.Writable[[]*listbox.Option[string]]
	lb         *listbox.Listbox[string]
	cb         *combobox.Combobox[string]
	filterMode *signal.Writable[combobox.FilterMode]

	treeItems *signal.Writable[[]*tree.Item[string]]
	tr        *tree.Tree[string]

	zones []zone
}

type Repos struct {
	Catalog *repository.CatalogRepo
	State   *repository.StateRepo
}

type pane int

const (
	paneMenu pane = iota
	paneCombo
	paneTree
	paneCount
)

func (p pane) String() string {
	switch p {
	case paneMenu:
		return "menu"
	case paneCombo:
		return "combobox"
	default:
		return "tree"
	}
}

func New(ctx context.Context, cfg config.Config, repos Repos) *App {
	a := &App{
		ctx:   ctx,
		cfg:   cfg,
		repos: repos,
		keys:  defaultKeys(),
		theme: newTheme(cfg.UI.Theme),
		focus: paneCombo,
	}
	a.root = events.NewNode("app", nil)
	a.menuNode = events.NewNode("menubar", a.root)
	a.comboNode = events.NewNode("combobox", a.root)
	a.popupNode = events.NewNode("combobox-popup", a.comboNode)
	a.treeNode = events.NewNode("tree", a.root)

	a.buildMenu()
	a.buildCombobox()
	a.buildTree()
	a.field.focus()
	a.cb.OnFocusIn(events.FocusEvent{Target: a.field})
	return a
}

func (a *App) behavior() (list.FocusMode, list.TextDirection) {
	fm, _ := a.cfg.FocusMode()
	dir, _ := a.cfg.TextDirection()
	return fm, dir
}

func (a *App) menuItem(text, value string, sub *menu.Menu[string]) *menu.Item[string] {
	id := "menu-" + strings.ToLower(strings.ReplaceAll(text, " ", "-"))
	return menu.NewItem(menu.ItemInputs[string]{
		ID:      id,
		Value:   value,
		Text:    text,
		Element: events.NewNode(id, a.menuNode),
		Submenu: sub,
	})
}

func (a *App) buildMenu() {
	_, dir := a.behavior()
	sub := func(id string, items ...*menu.Item[string]) *menu.Menu[string] {
		return menu.NewMenu(menu.Inputs[string]{ID: id, Items: signal.Const(items), TextDirection: signal.Const(dir)})
	}
	modes := sub("menu-filter-mode",
		a.menuItem("Manual", "mode:manual", nil),
		a.menuItem("Auto-select", "mode:auto-select", nil),
		a.menuItem("Highlight", "mode:highlight", nil),
	)
	file := sub("menu-file",
		a.menuItem("Save state", "save", nil),
		a.menuItem("Reset state", "reset", nil),
		a.menuItem("Quit", "quit", nil),
	)
	view := sub("menu-view",
		a.menuItem("Expand all", "expand-all", nil),
		a.menuItem("Collapse all", "collapse-all", nil),
		a.menuItem("Filter mode", "", modes),
	)
	a.bar = menu.NewMenubar(menu.Inputs[string]{
		ID:            "menubar",
		Items:         signal.Const([]*menu.Item[string]{a.menuItem("File", "", file), a.menuItem("View", "", view)}),
		TextDirection: signal.Const(dir),
	})
	a.menuRoot = menu.NewRoot(a.bar, func(v string) { a.action = v })
}

func (a *App) buildCombobox() {
	_, dir := a.behavior()
	a.field = newField("combobox-input", a.comboNode, "type to filter…")
	a.options = signal.New[[]*listbox.Option[string]](nil)
	a.filterMode = signal.New(a.cfg.FilterMode())
	inputValue := signal.New("")
	matching := a.cfg.Matching()
	label := func(o *listbox.Option[string]) string { return o.Label() }
	value := func(o *listbox.Option[string]) string { return o.Value() }

	filtered := signal.NewComputed(func() []*listbox.Option[string] {
		return filtering.Filter(a.options.Get(), label, inputValue.Get(), matching)
	})
	in := listbox.Inputs[string]{ID: "combobox-listbox"}
	in.Items = filtered
	in.FocusMode = signal.Const(list.ActiveDescendant)
	in.TypeaheadDelay = signal.Const(a.cfg.Behavior.TypeaheadDelay)
	a.lb = listbox.New(in)

	a.cb = combobox.New(combobox.Inputs[string]{
		Popup:         signal.Const(a.lb.Popup()),
		Input:         signal.Const[combobox.InputElement](a.field),
		Container:     signal.Const[events.Element](a.comboNode),
		FilterMode:    a.filterMode,
		InputValue:    inputValue,
		FirstMatch:    filtering.FirstMatch(a.options, label, value, inputValue, 2),
		TextDirection: signal.Const(dir),
	})
}

func (a *App) buildTree() {
	fm, dir := a.behavior()
	a.treeItems = signal.New[[]*tree.Item[string]](nil)
	a.tr = tree.New(tree.Inputs[string]{
		ID:              treeWidgetID,
		AllItems:        a.treeItems,
		Multi:           signal.Const(a.cfg.Tree.Multi),
		Wrap:            signal.Const(a.cfg.Behavior.Wrap),
		SoftDisabled:    signal.Const(a.cfg.Behavior.SoftDisabled),
		Nav:             signal.Const(a.cfg.Tree.Nav),
		MultiExpandable: signal.Const(a.cfg.Tree.MultiExpandable),
		SelectionMode:   signal.Const(a.cfg.TreeSelectionMode()),
		FocusMode:       signal.Const(fm),
		TextDirection:   signal.Const(dir),
		TypeaheadDelay:  signal.Const(a.cfg.Behavior.TypeaheadDelay),
	})
}

func (a *App) Init() tea.Cmd {
	return a.loadCatalog()
}

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		entries, err := a.repos.Catalog.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		msg := catalogMsg{entries: entries}
		if a.repos.State != nil {
			if msg.tree, err = a.repos.State.Load(a.ctx, treeWidgetID); err != nil {
				return errMsg{err}
			}
			if msg.combo, err = a.repos.State.Load(a.ctx, comboWidgetID); err != nil {
				return errMsg{err}
			}
		}
		return msg
	}
}

func (a *App) applyCatalog(m catalogMsg) {
	signal.Batch(func() {
		a.treeItems.Set(treeItems(m.entries, a.treeNode))
		a.options.Set(leafOptions(m.entries, a.popupNode))
		if st := m.tree; st != nil {
			a.tr.SetExpandedIDs(st.ExpandedIDs)
			a.tr.Values().Set(st.Selected)
			if st.ActiveID != nil {
				for _, it := range a.tr.VisibleItems() {
					if it.ID() == *st.ActiveID {
						a.tr.List.Goto(it, list.Options{})
					}
				}
			}
		}
		a.tr.SetDefaultState()
		if st := m.combo; st != nil {
			a.field.SetValue(st.Input)
			a.cb.InputValue().Set(st.Input)
			a.lb.Values().Set(st.Selected)
		}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case catalogMsg:
		a.applyCatalog(m)
		a.status = fmt.Sprintf("loaded %d catalog entries", len(m.entries))
	case statusMsg:
		a.status = string(m)
	case errMsg:
		log.Printf("error: %v", m.error)
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Sequence(a.saveCmd(), tea.Quit)
	case key.Matches(m, a.keys.Save):
		return a.saveCmd()
	case key.Matches(m, a.keys.NextPane):
		a.setFocus((a.focus + 1) % paneCount)
		return nil
	case key.Matches(m, a.keys.PrevPane):
		a.setFocus((a.focus + paneCount - 1) % paneCount)
		return nil
	case key.Matches(m, a.keys.Menu):
		a.setFocus(paneMenu)
		return nil
	}

	switch a.focus {
	case paneMenu:
		ev, ok := events.FromTeaKey(m, a.menuNode)
		if ok {
			a.menuRoot.OnKeydown(&ev)
		}
		return a.runAction()
	case paneTree:
		ev, ok := events.FromTeaKey(m, a.treeNode)
		if ok {
			a.tr.OnKeydown(&ev)
		}
	case paneCombo:
		ev, ok := events.FromTeaKey(m, a.field)
		if !ok {
			return nil
		}
		a.cb.OnKeydown(&ev)
		if ev.DefaultPrevented() {
			return nil
		}
		a.editField(m, ev)
	}
	return nil
}

// editField applies a key the combobox let through to the input.
func (a *App) editField(m tea.KeyMsg, ev events.KeyboardEvent) {
	switch {
	case ev.Key == events.KeyBackspace:
		a.cb.OnInput(a.field.Backspace())
		a.cb.OnFilter()
	case m.Type == tea.KeyRunes || m.Type == tea.KeySpace:
		if ev.Mod&^events.ModShift != 0 {
			return
		}
		a.cb.OnInput(a.field.Type(ev.Key))
		a.cb.OnFilter()
	default:
		a.field.moveCaret(m)
	}
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	ev, ok := events.FromTeaMouse(m, a.resolve)
	if !ok || ev.Target == nil {
		return nil
	}
	switch {
	case events.Within(a.menuNode, ev.Target):
		a.setFocus(paneMenu)
		a.menuRoot.OnPointerdown(&ev)
		return a.runAction()
	case events.Within(a.comboNode, ev.Target):
		a.setFocus(paneCombo)
		a.cb.OnPointerup(&ev)
	case events.Within(a.treeNode, ev.Target):
		a.setFocus(paneTree)
		a.tr.OnPointerdown(&ev)
	}
	return nil
}

func (a *App) paneNode(p pane) *events.Node {
	switch p {
	case paneMenu:
		return a.menuNode
	case paneCombo:
		return a.comboNode
	default:
		return a.treeNode
	}
}

func (a *App) setFocus(p pane) {
	if p == a.focus {
		return
	}
	switch a.focus {
	case paneCombo:
		a.cb.OnFocusOut(events.FocusEvent{Target: a.field, RelatedTarget: a.paneNode(p)})
		a.field.blur()
	case paneMenu:
		a.bar.CloseSubmenus()
	}
	a.focus = p
	switch p {
	case paneCombo:
		a.field.focus()
		a.cb.OnFocusIn(events.FocusEvent{Target: a.field, RelatedTarget: a.paneNode(p)})
	case paneMenu:
		if a.bar.List.ActiveItem() == nil {
			a.bar.List.First(list.Options{})
		}
	case paneTree:
		a.tr.SetDefaultState()
	}
}

// runAction performs the menu item picked during the last event.
func (a *App) runAction() tea.Cmd {
	action := a.action
	a.action = ""
	switch {
	case action == "":
		return nil
	case action == "save":
		return a.saveCmd()
	case action == "reset":
		return a.resetCmd()
	case action == "quit":
		return tea.Sequence(a.saveCmd(), tea.Quit)
	case action == "expand-all":
		a.tr.ExpandAll()
	case action == "collapse-all":
		a.tr.CollapseAll()
	case strings.HasPrefix(action, "mode:"):
		if mode, ok := combobox.ParseFilterMode(strings.TrimPrefix(action, "mode:")); ok {
			a.filterMode.Set(mode)
			a.status = "filter mode: " + mode.String()
		}
	}
	return nil
}

func (a *App) snapshot() (repository.WidgetState, repository.WidgetState) {
	ts := repository.WidgetState{
		WidgetID:    treeWidgetID,
		Kind:        "tree",
		ExpandedIDs: a.tr.ExpandedIDs(),
		Selected:    a.tr.Values().Get(),
	}
	if it := a.tr.List.ActiveItem(); it != nil {
		id := it.ID()
		ts.ActiveID = &id
	}
	cs := repository.WidgetState{
		WidgetID: comboWidgetID,
		Kind:     "combobox",
		Input:    a.field.Value(),
		Selected: a.lb.Values().Get(),
	}
	return ts, cs
}

func (a *App) saveCmd() tea.Cmd {
	if a.repos.State == nil {
		return nil
	}
	ts, cs := a.snapshot()
	return func() tea.Msg {
		for _, st := range []repository.WidgetState{ts, cs} {
			if err := a.repos.State.Save(a.ctx, st); err != nil {
				return errMsg{fmt.Errorf("save %s: %w", st.WidgetID, err)}
			}
		}
		return statusMsg("state saved")
	}
}

func (a *App) resetCmd() tea.Cmd {
	signal.Batch(func() {
		a.tr.CollapseAll()
		a.tr.Values().Set(nil)
		a.field.SetValue("")
		a.cb.InputValue().Set("")
		a.lb.Values().Set(nil)
	})
	if a.repos.State == nil {
		return nil
	}
	return func() tea.Msg {
		for _, id := range []string{treeWidgetID, comboWidgetID} {
			if err := a.repos.State.Delete(a.ctx, id); err != nil {
				return errMsg{err}
			}
		}
		return statusMsg("state reset")
	}
}

type catalogMsg struct {
	entries []repository.CatalogEntry
	tree    *repository.WidgetState
	combo   *repository.WidgetState
}

type statusMsg string

type errMsg struct{ error }

func (a *App) paneStyle(p pane) lipgloss.Style {
	if a.focus == p {
		return a.theme.focused
	}
	return a.theme.pane
}
