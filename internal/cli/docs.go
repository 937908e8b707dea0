package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/selin-ak/tickdo/internal/docs"
)

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     "Show documentation (topics: " + strings.Join(docs.Topics(), ", ") + ")",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docs.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := "usage"
			if len(args) == 1 {
				topic = args[0]
			}
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("no docs topic %q (topics: %s)", topic, strings.Join(docs.Topics(), ", "))
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				// Fall back to the raw markdown rather than failing.
				fmt.Fprintln(cmd.OutOrStdout(), body)
				return nil
			}
			out, err := r.Render(body)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), body)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
