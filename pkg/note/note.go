package note

import (
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/quill/pkg/timeutil"
)

// DefaultTitle is assigned whenever a note is created or saved with a
// blank title.
const DefaultTitle = "Untitled"

// Note is a single rich-text document. Content holds an HTML fragment
// produced by the editing surface; it is stored verbatim.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Pinned    bool     `json:"pinned"`
	UpdatedAt int64    `json:"updatedAt"`
}

// New returns an empty untitled note stamped with a fresh id.
func New() *Note {
	return &Note{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		Tags:      []string{},
		UpdatedAt: timeutil.NowMillis(),
	}
}

// Duplicate copies src under a new id. The title gains a " (copy)" suffix
// and the timestamp is refreshed; everything else carries over.
func Duplicate(src Note) *Note {
	tags := make([]string, len(src.Tags))
	copy(tags, src.Tags)
	return &Note{
		ID:        uuid.NewString(),
		Title:     src.Title + " (copy)",
		Content:   src.Content,
		Tags:      tags,
		Pinned:    src.Pinned,
		UpdatedAt: timeutil.NowMillis(),
	}
}

// NormalizeTitle trims s and falls back to DefaultTitle when nothing is left.
func NormalizeTitle(s string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return DefaultTitle
}

// ParseTags splits a comma separated draft into tags, trimming each piece
// and dropping empties. Duplicates are kept; the tag universe dedupes.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags renders tags back into the draft form ParseTags accepts.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// HasTag reports whether the note carries the exact tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SearchText is the lowercased haystack used for query matching: the title
// plus the tag-stripped body.
func (n *Note) SearchText() string {
	return strings.ToLower(n.Title + " " + PlainText(n.Content))
}
