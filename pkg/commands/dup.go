package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/runner/dup"
)

func addDup(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "duplicate <id>",
		Short:   "copy a note under a fresh id",
		Aliases: []string{"dup"},
		Example: `
quill duplicate 3f2a
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			r := dup.Dup{ID: args[0], Notebook: nb}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
