// Package backup serializes the whole note sequence to a portable file and
// reads one back in. Import validates only that the top level is a list;
// element shape is trusted verbatim, matching what the store persists.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/quill/pkg/note"
)

// DefaultFilename is the suggested name for exported backups.
const DefaultFilename = "notes_backup.json"

var (
	// ErrParse reports a backup that is not valid JSON at all.
	ErrParse = errors.New("backup: malformed JSON")

	// ErrNotList reports valid JSON whose top level is not a note list.
	ErrNotList = errors.New("backup: top-level value is not a list")
)

// Export writes the sequence as indented JSON, the same shape the store
// persists under its notes key.
func Export(w io.Writer, notes []note.Note) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(notes)
}

// Import parses a backup. Malformed input yields ErrParse, a non-list top
// level yields ErrNotList; in both cases the caller's store is untouched
// because nothing is returned to apply.
func Import(r io.Reader) ([]note.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("backup: read: %w", err)
	}

	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrParse
	}
	if _, ok := probe.([]interface{}); !ok {
		return nil, ErrNotList
	}

	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		// The top level is a list but the elements do not decode as notes
		// at all (e.g. a list of numbers).
		return nil, ErrParse
	}
	if notes == nil {
		notes = []note.Note{}
	}
	return notes, nil
}
