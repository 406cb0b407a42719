package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/quill/pkg/backup"
	"tableflip.dev/quill/pkg/notebook"
)

// Import replaces the note sequence with the contents of a backup file.
// Parse failures leave the store untouched.
type Import struct {
	Path string

	Notebook *notebook.Notebook
}

func (r *Import) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not import, no notebook")
	}

	f, err := os.Open(r.Path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer f.Close()

	notes, err := backup.Import(f)
	if err != nil {
		return err
	}

	r.Notebook.Replace(notes)
	if err := r.Notebook.Flush(); err != nil {
		return err
	}
	fmt.Printf("imported %d notes\n", len(notes))
	return nil
}
