package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shopping/internal/model"
	"github.com/idilsaglam/shopping/internal/store"
	"github.com/idilsaglam/shopping/internal/ui"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the filtered list once and exit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newStore()
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func printList(w io.Writer, s *store.Store) {
	t := ui.Current()
	checked, unchecked := s.Counts()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(w, t.Title, "Shopping List"),
		ui.C(w, t.Success, t.SymChecked), checked,
		ui.C(w, t.Pending, t.SymUnchecked), unchecked,
		ui.C(w, t.Accent, "Total"), s.Len(),
	)

	lines := []string{
		header,
		ui.C(w, t.Muted, ui.ProgressBar(checked, s.Len(), 28)),
	}
	if filters := filterLine(s); filters != "" {
		lines = append(lines, ui.C(w, t.Muted, filters))
	}
	lines = append(lines, "")
	lines = append(lines, itemLines(w, s.VisibleItems())...)
	ui.Panel(w, lines)
}

func filterLine(s *store.Store) string {
	switch {
	case s.HideCompleted() && s.SearchTerm() != "":
		return fmt.Sprintf("checked hidden, search %q", s.SearchTerm())
	case s.HideCompleted():
		return "checked hidden"
	case s.SearchTerm() != "":
		return fmt.Sprintf("search %q", s.SearchTerm())
	}
	return ""
}

func itemLines(w io.Writer, items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(w, t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box, color := t.BoxUnchecked, t.Muted
		if it.Checked {
			box, color = t.BoxChecked, t.Success
		}
		name := it.Name
		if r := []rune(name); len(r) > 80 {
			name = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.C(w, "\033[2m", idx), ui.C(w, color, box), name))
	}
	return out
}
