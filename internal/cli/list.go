package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/selin-ak/tickdo/internal/model"
	"github.com/selin-ak/tickdo/internal/ui"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDispatcher(flags, func(c *cliContext) error {
				printList(c.d.State().Todos, group)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func printList(todos model.List, group bool) {
	t := ui.Current()

	d := todos.CompletedCount()
	p := todos.ActiveCount()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `tickdo add Buy milk`"))
	ui.Panel(lines)
}

func flatLines(todos model.List) []string {
	t := ui.Current()
	if len(todos) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(todos))
	for _, todo := range todos {
		box := t.Muted.Render(t.BoxUnchecked)
		if todo.Completed {
			box = t.Success.Render(t.BoxChecked)
		}
		text := todo.Text
		if limit := lineWidth() - 12; len(text) > limit {
			text = text[:limit-3] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%3d.", todo.ID)), box, text))
	}
	return out
}

func groupLines(todos model.List) []string {
	t := ui.Current()
	var pend, done model.List
	for _, todo := range todos {
		if todo.Completed {
			done = append(done, todo)
		} else {
			pend = append(pend, todo)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}

func lineWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 80
}
