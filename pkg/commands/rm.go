package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/commands/options"
	"tableflip.dev/quill/pkg/runner/rm"
)

func addRm(topLevel *cobra.Command) {
	fo := &options.ForceOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "delete a note",
		Aliases: []string{"rm"},
		Example: `
quill delete 3f2a
quill delete 3f2a --force
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			r := rm.Rm{ID: args[0], Force: fo.Force, Notebook: nb}
			return r.Do(context.Background())
		},
	}

	options.AddForceArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
