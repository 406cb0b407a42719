package note

import (
	"html"
	"strings"
)

// blockTags are rendered as line breaks when flattening HTML to text so
// previews keep their paragraph structure.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true,
	"ul": true, "ol": true, "blockquote": true,
}

// PlainText strips markup from an HTML fragment, leaving the visible text.
// It is intentionally forgiving: unterminated tags swallow the remainder of
// the fragment rather than erroring, since stored content is trusted to come
// from the editing surface.
func PlainText(fragment string) string {
	var b strings.Builder
	b.Grow(len(fragment))

	inTag := false
	var tag strings.Builder
	for _, r := range fragment {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
				if breaksLine(tag.String()) {
					b.WriteByte('\n')
				}
				tag.Reset()
				continue
			}
			tag.WriteRune(r)
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}

	out := html.UnescapeString(b.String())
	return strings.TrimSpace(collapseBlankRuns(out))
}

// breaksLine reports whether the raw tag body ends a visual line: closing
// block tags and <br> do, opening tags do not.
func breaksLine(raw string) bool {
	closing := strings.HasPrefix(raw, "/")
	name := tagName(raw)
	if name == "br" {
		return true
	}
	return closing && blockTags[name]
}

func tagName(raw string) string {
	raw = strings.TrimPrefix(raw, "/")
	raw = strings.TrimSuffix(raw, "/")
	if i := strings.IndexAny(raw, " \t\n"); i >= 0 {
		raw = raw[:i]
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// collapseBlankRuns squeezes runs of blank lines down to one so stripped
// block markup does not leave gaping holes in previews.
func collapseBlankRuns(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
