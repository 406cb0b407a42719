package tags

import (
	"context"
	"errors"

	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/printers"
	"tableflip.dev/quill/pkg/view"
)

// Tags prints the tag universe.
type Tags struct {
	Notebook *notebook.Notebook
}

func (r *Tags) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not list tags, no notebook")
	}

	pp := printers.PrettyPrint{}
	pp.Title("Tags")
	pp.Tags(view.TagUniverse(r.Notebook.Notes()))
	return nil
}
