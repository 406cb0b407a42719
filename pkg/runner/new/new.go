package new

import (
	"context"
	"errors"

	"tableflip.dev/quill/pkg/note"
	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/printers"
)

// New creates a note, optionally seeded from flags, and persists it before
// the process exits.
type New struct {
	Title   string
	Tags    string
	Content string

	Notebook *notebook.Notebook
}

func (r *New) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not create, no notebook")
	}

	n := r.Notebook.Create()
	if r.Title != "" || r.Tags != "" || r.Content != "" {
		r.Notebook.Update(n.ID, notebook.Patch{
			Title:     note.NormalizeTitle(r.Title),
			Content:   r.Content,
			Tags:      note.ParseTags(r.Tags),
			UpdatedAt: r.Notebook.Now(),
		})
	}

	// One-shot command: flush instead of waiting out the debounce.
	if err := r.Notebook.Flush(); err != nil {
		return err
	}

	created, _ := r.Notebook.Get(n.ID)
	pp := printers.PrettyPrint{ShowID: true}
	pp.Notes(created)
	return nil
}
