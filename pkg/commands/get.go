package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/commands/options"
	"tableflip.dev/quill/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "get [query]",
		Short:   "list notes",
		Aliases: []string{"list", "ls"},
		Example: `
quill get
quill get groceries
quill get --tag work --table --show-id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && fo.Query == "" {
				fo.Query = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			r := get.Get{
				Query:    fo.Query,
				Tag:      fo.Tag,
				Table:    oo.Table,
				ShowID:   io.ShowID,
				Notebook: nb,
			}
			return r.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddTableArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
