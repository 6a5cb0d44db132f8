package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Toggle        key.Binding
	Delete        key.Binding
	Edit          key.Binding
	Add           key.Binding
	Search        key.Binding
	ClearSearch   key.Binding
	HideCompleted key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "check")),
		Delete:        key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Edit:          key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "rename")),
		Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear search")),
		HideCompleted: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide checked")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Edit, k.Add, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Delete, k.Edit, k.Add},
		{k.Search, k.ClearSearch, k.HideCompleted},
		{k.Help, k.Quit},
	}
}

// inputKeyMap is active while a text input has focus: the add form, the
// search form, or an item's inline rename.
type inputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Cancel}}
}

// editKeyMap adds row navigation to the input keys for inline rename.
type editKeyMap struct{ inputKeyMap }

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Up, k.Down}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Cancel}, {k.Up, k.Down}}
}
