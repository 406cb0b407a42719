package ui

import (
	"context"
	"errors"

	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/store"
	tuiapp "tableflip.dev/quill/pkg/tui/app"
)

// UI launches the interactive Bubble Tea application.
type UI struct {
	Notebook *notebook.Notebook
	KV       store.KV
}

func (r *UI) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not start ui, no notebook")
	}
	return tuiapp.Run(ctx, r.Notebook, r.KV)
}
