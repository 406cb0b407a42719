// Package session tracks the single note open for editing. Title and tags
// are buffered as drafts so cancelling is free; the body lives in the
// editing surface until save and is never written back on any other path.
package session

import (
	"tableflip.dev/quill/pkg/note"
)

// Command names a formatting operation forwarded to the surface.
type Command string

const (
	CmdBold        Command = "bold"
	CmdItalic      Command = "italic"
	CmdUnderline   Command = "underline"
	CmdHeading     Command = "heading"
	CmdList        Command = "list"
	CmdLink        Command = "link"
	CmdClearFormat Command = "clear-format"
)

// Surface is the rich-text editing collaborator. The session pushes content
// in on open and reads it back on save; it never assumes what renders it.
type Surface interface {
	Content() string
	SetContent(html string)
	MoveCursorEnd()
	Focus()
	Apply(cmd Command, arg string) error
}

// Prompter asks the user for a single line of text. ok is false when the
// user declines.
type Prompter interface {
	Prompt(prompt string) (text string, ok bool)
}

// Result is the commit payload a save produces. The caller applies it to
// the store; the session itself never touches stored notes.
type Result struct {
	ID      string
	Title   string
	Content string
	Tags    []string
}

// Session is the editing state machine: Closed until Open, Editing until
// Save or Cancel.
type Session struct {
	surface Surface

	editingID string
	preview   bool

	TitleInput string
	TagInput   string
}

// New returns a closed session bound to the given surface.
func New(surface Surface) *Session {
	return &Session{surface: surface}
}

// Editing reports whether a note is open.
func (s *Session) Editing() bool {
	return s.editingID != ""
}

// EditingID returns the open note's id, or "" when closed.
func (s *Session) EditingID() string {
	return s.editingID
}

// Preview reports whether the read-only preview is showing.
func (s *Session) Preview() bool {
	return s.preview
}

// Open loads the note into draft state and hands its body to the surface,
// cursor at the end.
func (s *Session) Open(n note.Note) {
	s.editingID = n.ID
	s.TitleInput = n.Title
	s.TagInput = note.JoinTags(n.Tags)
	s.preview = false

	s.surface.SetContent(n.Content)
	s.surface.MoveCursorEnd()
	s.surface.Focus()
}

// Save reads the surface, normalizes the drafts, and closes. The second
// return is false when no session is active.
func (s *Session) Save() (Result, bool) {
	if !s.Editing() {
		return Result{}, false
	}
	r := Result{
		ID:      s.editingID,
		Title:   note.NormalizeTitle(s.TitleInput),
		Content: s.surface.Content(),
		Tags:    note.ParseTags(s.TagInput),
	}
	s.reset()
	return r, true
}

// Cancel discards the drafts without committing. The surface content is
// abandoned, not restored; nothing was ever written back.
func (s *Session) Cancel() {
	s.reset()
}

// ForgetIf closes the session without saving when the given note is the one
// being edited, as happens when it is deleted out from under the editor.
func (s *Session) ForgetIf(id string) {
	if s.editingID == id {
		s.reset()
	}
}

// TogglePreview flips the read-only preview. Stored data is unaffected.
func (s *Session) TogglePreview() {
	if s.Editing() {
		s.preview = !s.preview
	}
}

// ApplyFormatting forwards a formatting command to the surface. It requires
// an active, non-preview session. Link insertion asks the prompter for a
// URL and aborts when none is given. Surface failures are swallowed; a
// formatting hiccup is never worth surfacing.
func (s *Session) ApplyFormatting(cmd Command, prompter Prompter) {
	if !s.Editing() || s.preview {
		return
	}
	arg := ""
	if cmd == CmdLink {
		url, ok := prompter.Prompt("Link URL")
		if !ok || url == "" {
			return
		}
		arg = url
	}
	_ = s.surface.Apply(cmd, arg)
}

func (s *Session) reset() {
	s.editingID = ""
	s.TitleInput = ""
	s.TagInput = ""
	s.preview = false
}
