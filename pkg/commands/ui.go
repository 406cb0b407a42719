package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
quill ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, kv, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			i := ui.UI{Notebook: nb, KV: kv}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
