// Package surface adapts a Bubbles textarea to the session.Surface port.
// The textarea holds the note's raw HTML fragment; formatting commands
// rewrite the markup around the cursor's line.
package surface

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/quill/pkg/note"
	"tableflip.dev/quill/pkg/session"
)

// Editor is the TUI's rich-text surface.
type Editor struct {
	ta textarea.Model
}

// New returns an unfocused editor surface.
func New() *Editor {
	ta := textarea.New()
	ta.Placeholder = "Write…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	return &Editor{ta: ta}
}

// Content returns the HTML fragment as currently edited.
func (e *Editor) Content() string {
	return e.ta.Value()
}

// SetContent replaces the fragment. The textarea leaves the cursor at the
// end of what was set.
func (e *Editor) SetContent(html string) {
	e.ta.SetValue(html)
}

// MoveCursorEnd places the cursor after the last character.
func (e *Editor) MoveCursorEnd() {
	for i := 0; i < e.ta.LineCount(); i++ {
		e.ta.CursorDown()
	}
	e.ta.CursorEnd()
}

// Focus gives the textarea input focus. The blink command is dropped; the
// app restarts it on its next update.
func (e *Editor) Focus() {
	e.ta.Focus()
}

// Blur removes input focus.
func (e *Editor) Blur() {
	e.ta.Blur()
}

// Focused reports input focus.
func (e *Editor) Focused() bool {
	return e.ta.Focused()
}

// Apply rewrites markup for the given formatting command. Inline styles
// wrap the cursor's line; links append to it; clear-format strips the whole
// fragment down to text.
func (e *Editor) Apply(cmd session.Command, arg string) error {
	val := e.ta.Value()

	if cmd == session.CmdClearFormat {
		e.ta.SetValue(note.PlainText(val))
		return nil
	}

	lines := strings.Split(val, "\n")
	row := e.ta.Line()
	if row < 0 || row >= len(lines) {
		return fmt.Errorf("surface: cursor line %d out of range", row)
	}

	switch cmd {
	case session.CmdBold:
		lines[row] = wrapLine(lines[row], "b")
	case session.CmdItalic:
		lines[row] = wrapLine(lines[row], "i")
	case session.CmdUnderline:
		lines[row] = wrapLine(lines[row], "u")
	case session.CmdHeading:
		lines[row] = wrapLine(lines[row], "h2")
	case session.CmdList:
		lines[row] = wrapLine(lines[row], "li")
	case session.CmdLink:
		lines[row] += fmt.Sprintf(`<a href=%q>%s</a>`, arg, arg)
	default:
		return fmt.Errorf("surface: unknown command %q", cmd)
	}

	e.ta.SetValue(strings.Join(lines, "\n"))
	return nil
}

// Update forwards terminal input to the textarea.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return cmd
}

// View renders the textarea.
func (e *Editor) View() string {
	return e.ta.View()
}

// SetSize resizes the textarea.
func (e *Editor) SetSize(width, height int) {
	e.ta.SetWidth(width)
	e.ta.SetHeight(height)
}

func wrapLine(s, tag string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return "<" + tag + ">" + s + "</" + tag + ">"
}
