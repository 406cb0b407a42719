package pin

import (
	"context"
	"errors"

	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/printers"
)

// Pin toggles the pin flag on a note.
type Pin struct {
	ID string

	Notebook *notebook.Notebook
}

func (r *Pin) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not pin, no notebook")
	}

	n, err := r.Notebook.Resolve(r.ID)
	if err != nil {
		return err
	}
	r.Notebook.TogglePin(n.ID)
	if err := r.Notebook.Flush(); err != nil {
		return err
	}

	updated, _ := r.Notebook.Get(n.ID)
	pp := printers.PrettyPrint{ShowID: true}
	pp.Notes(updated)
	return nil
}
