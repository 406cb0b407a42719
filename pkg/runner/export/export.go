package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/quill/pkg/backup"
	"tableflip.dev/quill/pkg/notebook"
)

// Export writes the whole note sequence as a backup file.
type Export struct {
	// Path is the target file; "-" or empty writes to stdout.
	Path string

	Notebook *notebook.Notebook
}

func (r *Export) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not export, no notebook")
	}

	notes := r.Notebook.Notes()

	if r.Path == "" || r.Path == "-" {
		if err := backup.Export(os.Stdout, notes); err != nil {
			return err
		}
		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprintf(os.Stderr, "exported %d notes\n", len(notes))
		}
		return nil
	}

	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	if err := backup.Export(f, notes); err != nil {
		return err
	}
	fmt.Printf("exported %d notes to %s\n", len(notes), r.Path)
	return nil
}
