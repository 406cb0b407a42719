package theme

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/quill/pkg/notebook"
)

// Theme toggles or reports the persisted dark-theme preference.
type Theme struct {
	Show bool

	Notebook *notebook.Notebook
}

func (r *Theme) Do(ctx context.Context) error {
	if r.Notebook == nil {
		return errors.New("can not set theme, no notebook")
	}

	dark := r.Notebook.Theme()
	if r.Show {
		fmt.Println(name(dark))
		return nil
	}

	if err := r.Notebook.SetTheme(!dark); err != nil {
		return err
	}
	fmt.Printf("theme: %s\n", name(!dark))
	return nil
}

func name(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
