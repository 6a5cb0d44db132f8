package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/idilsaglam/shopping/internal/model"
	"github.com/idilsaglam/shopping/internal/ui"
)

func (m Model) View() string {
	visible := m.store.VisibleItems()
	m.log.Debug().Int("visible", len(visible)).Int("total", m.store.Len()).Msg("rendering shopping list")

	lines := []string{
		m.headerView(),
		m.searchView(),
		m.filterView(),
		"",
	}
	lines = append(lines, m.itemLines(visible)...)

	if m.mode == modeAdd {
		lines = append(lines, barStyle.Render("Add item\n"+m.addInput.View()))
	}
	lines = append(lines, "", m.help.View(m.helpKeys()))

	style := panelStyle
	if m.width > 0 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) headerView() string {
	th := ui.Current()
	checked, unchecked := m.store.Counts()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Shopping List"),
		successStyle.Render(th.SymChecked), checked,
		pendingStyle.Render(th.SymUnchecked), unchecked,
		accentStyle.Render("Total"), m.store.Len(),
	)
}

func (m Model) searchView() string {
	label := accentStyle.Render("Search:") + " "
	if m.mode == modeSearch {
		return label + m.searchInput.View()
	}
	if term := m.store.SearchTerm(); term != "" {
		return label + term
	}
	return label + mutedStyle.Render("(none)")
}

func (m Model) filterView() string {
	th := ui.Current()
	box := th.BoxUnchecked
	if m.store.HideCompleted() {
		box = th.BoxChecked
	}
	return mutedStyle.Render(box + " hide checked items")
}

func (m Model) itemLines(visible []model.Item) []string {
	if len(visible) == 0 {
		return []string{mutedStyle.Render("no items")}
	}
	out := make([]string, 0, len(visible))
	for i, it := range visible {
		out = append(out, m.itemLine(it, i == m.cursor))
	}
	return out
}

// itemLine renders one row: a static label or the inline rename input,
// then the row controls when selected. Controls are disabled while editing.
func (m Model) itemLine(it model.Item, selected bool) string {
	th := ui.Current()

	var title string
	if ed, ok := m.editors[it.ID]; it.IsEditing && ok {
		title = editStyle.Render("✎ ") + ed.View()
	} else {
		box := mutedStyle.Render(th.BoxUnchecked)
		name := it.Name
		if it.Checked {
			box = successStyle.Render(th.BoxChecked)
			name = doneStyle.Render(name)
		}
		title = box + " " + name
	}

	prefix := "  "
	if selected {
		prefix = selectedStyle.Render(">") + " "
	}
	line := prefix + title
	if selected {
		controls := "[check] [delete]"
		if it.IsEditing {
			controls = disabledStyle.Render(controls)
		} else {
			controls = mutedStyle.Render(controls)
		}
		line += "  " + controls
	}
	return line
}

func (m Model) helpKeys() help.KeyMap {
	switch m.mode {
	case modeAdd, modeSearch:
		return m.inputKeys
	}
	if it, ok := m.selected(); ok && it.IsEditing {
		return editKeyMap{m.inputKeys}
	}
	return m.keys
}
