package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/commands/options"
	runnew "tableflip.dev/quill/pkg/runner/new"
)

func addNew(topLevel *cobra.Command) {
	no := &options.NoteOptions{}

	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "create a note",
		Example: `
quill new
quill new "Trip plans" --tags travel,2026
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			title := no.Title
			if len(args) > 0 {
				title = strings.Join(args, " ")
			}

			r := runnew.New{
				Title:    title,
				Tags:     no.Tags,
				Content:  no.Content,
				Notebook: nb,
			}
			return r.Do(context.Background())
		},
	}

	options.AddNoteArgs(cmd, no)

	topLevel.AddCommand(cmd)
}
