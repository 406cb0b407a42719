package tuiapp

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/quill/pkg/note"
	"tableflip.dev/quill/pkg/timeutil"
)

const pinGlyph = "★"

func (m *Model) View() string {
	var body string
	switch m.mode {
	case modeEdit:
		body = m.viewEditor()
	case modeConfirmDelete:
		body = m.overlay(fmt.Sprintf("Delete %q?", m.confirmTitle), "y / n")
	case modeLinkPrompt:
		body = m.overlay("Link URL", m.linkInput.View())
	default:
		body = m.viewList()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatus())
}

func (m *Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.th.Title.Render("Quill"))
	b.WriteString(m.th.Faint.Render(fmt.Sprintf("  %d notes", len(m.visible))))
	b.WriteString("\n")

	filters := make([]string, 0, 2)
	if m.mode == modeSearch {
		filters = append(filters, m.search.View())
	} else if m.query != "" {
		filters = append(filters, "/"+m.query)
	}
	if m.tagFilter != "" {
		filters = append(filters, m.th.Tag.Render("#"+m.tagFilter))
	}
	if len(filters) > 0 {
		b.WriteString(strings.Join(filters, "  "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(m.th.Faint.Render("  no notes — press n to write one"))
		b.WriteString("\n")
	}

	now := time.Now()
	for i, n := range m.visible {
		marker := "  "
		if n.Pinned {
			marker = m.th.Pin.Render(pinGlyph) + " "
		}

		line := marker + n.Title
		if len(n.Tags) > 0 {
			line += m.th.Tag.Render("  [" + note.JoinTags(n.Tags) + "]")
		}
		line += m.th.Faint.Render("  " + relative(n.UpdatedAt, now))

		if i == m.cursor && m.mode == modeList {
			line = m.th.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) viewEditor() string {
	var b strings.Builder

	b.WriteString(m.th.Faint.Render("title "))
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(m.th.Faint.Render("tags  "))
	b.WriteString(m.tagsInput.View())
	b.WriteString("\n")

	if m.sess.Preview() {
		text := note.PlainText(m.surf.Content())
		if text == "" {
			text = m.th.Faint.Render("(empty)")
		}
		width := m.width - 6
		if width < 20 {
			width = 20
		}
		b.WriteString(m.th.PreviewFrame.Render(wordwrap.String(text, width)))
	} else {
		b.WriteString(m.th.EditorFrame.Render(m.surf.View()))
	}

	return b.String()
}

func (m *Model) viewStatus() string {
	saved := m.th.Status.Render("saved")
	if m.nb.Dirty() {
		saved = m.th.Dirty.Render("● saving…")
	}

	var help string
	switch m.mode {
	case modeEdit:
		if m.sess.Preview() {
			help = "ctrl+r edit · ctrl+s save · esc cancel"
		} else {
			help = "tab field · ctrl+s save · esc cancel · ctrl+r preview · alt+b/i/u/h/l/k/0 format"
		}
	case modeConfirmDelete, modeLinkPrompt:
		help = "enter confirm · esc back"
	default:
		help = "n new · enter edit · p pin · y dup · d del · / search · t tag · T theme · q quit"
	}

	status := m.status
	if status != "" {
		status = "  " + status
	}
	return saved + status + "\n" + m.th.Help.Render(help)
}

func (m *Model) overlay(title, body string) string {
	content := m.th.OverlayTitle.Render(title) + "\n\n" + body
	box := m.th.Overlay.Render(content)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
}

func relative(ms int64, now time.Time) string {
	return timeutil.Relative(ms, now)
}
