package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/shopping/internal/model"
	"github.com/idilsaglam/shopping/internal/store"
)

type uiMode int

const (
	modeList uiMode = iota
	modeAdd
	modeSearch
)

// Options tune the interactive list.
type Options struct {
	Logger zerolog.Logger
}

// Model turns key presses into store calls. View rebuilds the whole screen
// from store.VisibleItems after every one.
type Model struct {
	store *store.Store
	log   zerolog.Logger

	keys      keyMap
	inputKeys inputKeyMap
	help      help.Model

	mode   uiMode
	cursor int // index into the visible items

	addInput    textinput.Model
	searchInput textinput.Model
	editors     map[string]textinput.Model // by item id, one per editing item

	width, height int
}

func New(s *store.Store, opt Options) Model {
	m := Model{
		store:     s,
		log:       opt.Logger,
		keys:      defaultKeyMap(),
		inputKeys: defaultInputKeyMap(),
		help:      help.New(),
		editors:   map[string]textinput.Model{},
	}

	m.addInput = textinput.New()
	m.addInput.Prompt = "> "
	m.addInput.Placeholder = "e.g. broccoli"

	m.searchInput = textinput.New()
	m.searchInput.Prompt = ""
	m.searchInput.Placeholder = "search items"

	m.sync()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			m, cmd = m.updateAdd(msg)
		case modeSearch:
			m, cmd = m.updateSearch(msg)
		default:
			m, cmd = m.updateList(msg)
		}

	default:
		// cursor blink and friends go to whichever input has focus
		m, cmd = m.forwardToFocused(msg)
	}

	syncCmd := m.sync()
	return m, tea.Batch(cmd, syncCmd)
}

func (m Model) updateAdd(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Submit):
		m.store.AddItem(m.addInput.Value())
		m.closeAdd()
		return m, nil
	case key.Matches(msg, m.inputKeys.Cancel):
		m.closeAdd()
		return m, nil
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *Model) closeAdd() {
	m.addInput.Reset()
	m.addInput.Blur()
	m.mode = modeList
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Submit):
		m.store.SetSearchTerm(m.searchInput.Value())
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	case key.Matches(msg, m.inputKeys.Cancel):
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	it, hasItem := m.selected()
	if hasItem && it.IsEditing {
		return m.updateEditor(it, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Toggle):
		if hasItem {
			m.store.ToggleChecked(it.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if hasItem {
			m.store.RemoveItem(it.ID)
		}
	case key.Matches(msg, m.keys.Edit):
		if hasItem {
			m.store.SetEditing(it.ID, true)
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.addInput.Reset()
		return m, m.addInput.Focus()
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.SetValue(m.store.SearchTerm())
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		m.store.SetSearchTerm("")
	case key.Matches(msg, m.keys.HideCompleted):
		m.store.SetHideCompleted(!m.store.HideCompleted())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// updateEditor handles keys while the selected row is being renamed.
// The row's own input gets everything except submit, cancel and arrows.
func (m Model) updateEditor(it model.Item, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Submit):
		ed := m.editors[it.ID]
		m.store.RenameItem(it.ID, ed.Value())
		m.store.SetEditing(it.ID, false)
		return m, nil
	case key.Matches(msg, m.inputKeys.Cancel):
		m.store.SetEditing(it.ID, false)
		return m, nil
	case key.Matches(msg, m.inputKeys.Up):
		m.cursor--
		return m, nil
	case key.Matches(msg, m.inputKeys.Down):
		m.cursor++
		return m, nil
	}
	ed, ok := m.editors[it.ID]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	ed, cmd = ed.Update(msg)
	m.editors[it.ID] = ed
	return m, cmd
}

func (m Model) forwardToFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.addInput, cmd = m.addInput.Update(msg)
	case modeSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	default:
		if it, ok := m.selected(); ok && it.IsEditing {
			if ed, ok := m.editors[it.ID]; ok {
				ed, cmd = ed.Update(msg)
				m.editors[it.ID] = ed
			}
		}
	}
	return m, cmd
}

// selected returns the visible item under the cursor.
func (m Model) selected() (model.Item, bool) {
	visible := m.store.VisibleItems()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Item{}, false
	}
	return visible[m.cursor], true
}

// sync reconciles UI state with the store after a mutation: clamps the
// cursor, opens an input for every editing item and drops the rest, focuses
// the selected row's input, and mirrors the search term into the search box.
func (m *Model) sync() tea.Cmd {
	visible := m.store.VisibleItems()
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	for _, it := range m.store.Items() {
		if _, ok := m.editors[it.ID]; it.IsEditing && !ok {
			m.editors[it.ID] = newEditor(it.Name)
		}
	}
	for id := range m.editors {
		if it, ok := m.store.Item(id); !ok || !it.IsEditing {
			delete(m.editors, id)
		}
	}

	var cmd tea.Cmd
	sel, hasSel := m.selected()
	for id, ed := range m.editors {
		if m.mode == modeList && hasSel && sel.ID == id {
			if !ed.Focused() {
				cmd = ed.Focus()
			}
		} else {
			ed.Blur()
		}
		m.editors[id] = ed
	}

	if m.mode != modeSearch {
		m.searchInput.SetValue(m.store.SearchTerm())
	}
	return cmd
}

func newEditor(name string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(name)
	ti.CursorEnd()
	return ti
}
