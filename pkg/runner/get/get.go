package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/printers"
	"tableflip.dev/quill/pkg/view"
)

// Get lists notes, filtered and sorted the same way the TUI displays them.
type Get struct {
	Query  string
	Tag    string
	Table  bool
	ShowID bool

	Notebook *notebook.Notebook
}

func (r *Get) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not get, no notebook")
	}

	notes := view.Filter(r.Notebook.Notes(), r.Query, r.Tag)

	pp := printers.PrettyPrint{ShowID: r.ShowID}
	fmt.Println("")

	heading := "Notes"
	if r.Tag != "" {
		heading = fmt.Sprintf("Notes tagged %q", r.Tag)
	}
	if r.Query != "" {
		heading += fmt.Sprintf(" matching %q", r.Query)
	}
	pp.TitleWithCount(heading, len(notes))

	if r.Table {
		pp.Table(notes)
		return nil
	}
	pp.Notes(notes...)
	return nil
}
