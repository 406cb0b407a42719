// Package view derives display state from the note sequence: the tag
// universe and the filtered, sorted listing. Everything here is pure; the
// UI recomputes on every input change instead of patching incrementally.
package view

import (
	"sort"
	"strings"

	"tableflip.dev/quill/pkg/note"
)

// TagUniverse returns every distinct tag across the notes, sorted
// lexicographically.
func TagUniverse(notes []note.Note) []string {
	seen := make(map[string]struct{})
	for i := range notes {
		for _, t := range notes[i].Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Filter narrows notes by query and tag, then orders them pinned-first and
// newest-first within each group. The sort is stable so equal timestamps
// keep their store order.
func Filter(notes []note.Note, query, tag string) []note.Note {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]note.Note, 0, len(notes))
	for i := range notes {
		n := notes[i]
		if q != "" && !strings.Contains(n.SearchText(), q) {
			continue
		}
		if tag != "" && !n.HasTag(tag) {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}
