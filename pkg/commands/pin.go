package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/runner/pin"
)

func addPin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "toggle a note's pin",
		Example: `
quill pin 3f2a
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, _, err := loadNotebook()
			if err != nil {
				return err
			}
			defer nb.Close()

			r := pin.Pin{ID: args[0], Notebook: nb}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
