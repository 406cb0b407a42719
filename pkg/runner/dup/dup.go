package dup

import (
	"context"
	"errors"

	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/printers"
)

// Dup duplicates a note under a fresh id.
type Dup struct {
	ID string

	Notebook *notebook.Notebook
}

func (r *Dup) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not duplicate, no notebook")
	}

	src, err := r.Notebook.Resolve(r.ID)
	if err != nil {
		return err
	}
	cp, ok := r.Notebook.Duplicate(src.ID)
	if !ok {
		return notebook.ErrNotFound
	}
	if err := r.Notebook.Flush(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Notes(cp)
	return nil
}
