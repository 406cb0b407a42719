package notebook

import (
	"errors"
	"strings"

	"tableflip.dev/quill/pkg/note"
)

var (
	// ErrNotFound reports that no note matches the given id or prefix.
	ErrNotFound = errors.New("notebook: no such note")

	// ErrAmbiguous reports that an id prefix matches more than one note.
	ErrAmbiguous = errors.New("notebook: id prefix matches multiple notes")
)

// Resolve finds a note by full id or unique id prefix, which keeps CLI
// usage humane with uuid-length ids.
func (nb *Notebook) Resolve(idOrPrefix string) (note.Note, error) {
	if idOrPrefix == "" {
		return note.Note{}, ErrNotFound
	}

	nb.mu.Lock()
	defer nb.mu.Unlock()

	var found *note.Note
	for i := range nb.notes {
		if nb.notes[i].ID == idOrPrefix {
			n := clone(nb.notes[i])
			return n, nil
		}
		if strings.HasPrefix(nb.notes[i].ID, idOrPrefix) {
			if found != nil {
				return note.Note{}, ErrAmbiguous
			}
			found = &nb.notes[i]
		}
	}
	if found == nil {
		return note.Note{}, ErrNotFound
	}
	return clone(*found), nil
}
