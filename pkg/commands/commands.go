package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Rich-text note keeping on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addGet(topLevel)
	addTags(topLevel)
	addPin(topLevel)
	addDup(topLevel)
	addRm(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addTheme(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadNotebook wires the configured KV store into a notebook. Every command
// runs through this; tests exercise the runners directly with a memory KV.
func loadNotebook() (*notebook.Notebook, store.KV, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return notebook.New(kv, notebook.WithDebounce(cfg.Debounce())), kv, nil
}
