package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/backup"
	"tableflip.dev/quill/pkg/runner/export"
	"tableflip.dev/quill/pkg/runner/importer"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write all notes to a backup file",
		Example: `
quill export
quill export - | jq length
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			path := backup.DefaultFilename
			if len(args) > 0 {
				path = args[0]
			}
			r := export.Export{Path: path, Notebook: nb}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "replace all notes with a backup file's contents",
		Example: `
quill import notes_backup.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			r := importer.Import{Path: args[0], Notebook: nb}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
