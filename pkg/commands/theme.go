package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	show := false

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "toggle between light and dark",
		Example: `
quill theme
quill theme --show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			r := theme.Theme{Show: show, Notebook: nb}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the current theme instead of toggling.")

	topLevel.AddCommand(cmd)
}
