package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "list every tag in use",
		Example: `
quill tags
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			r := tags.Tags{Notebook: nb}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
