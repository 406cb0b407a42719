// Package tuiapp hosts the Bubble Tea program for the quill TUI: a filtered
// note list in front of an editor with draft title/tags and a rich-text
// body surface.
package tuiapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"tableflip.dev/quill/pkg/note"
	"tableflip.dev/quill/pkg/notebook"
	"tableflip.dev/quill/pkg/session"
	"tableflip.dev/quill/pkg/store"
	"tableflip.dev/quill/pkg/tui/surface"
	"tableflip.dev/quill/pkg/tui/theme"
	"tableflip.dev/quill/pkg/view"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeEdit
	modeConfirmDelete
	modeLinkPrompt
)

// editor field focus order
const (
	focusTitle = iota
	focusTags
	focusBody
)

type externalChangeMsg store.Event

type dirtyTickMsg struct{}

// staticPrompter satisfies session.Prompter with an answer the overlay
// already collected.
type staticPrompter struct {
	text string
}

func (p staticPrompter) Prompt(string) (string, bool) { return p.text, p.text != "" }

// Model contains UI state.
type Model struct {
	ctx    context.Context
	nb     *notebook.Notebook
	kv     store.KV
	events <-chan store.Event

	th   theme.Theme
	keys keyMap

	mode   mode
	width  int
	height int

	// list state
	visible   []note.Note
	cursor    int
	query     string
	tagFilter string
	search    textinput.Model

	// editor state
	sess       *session.Session
	surf       *surface.Editor
	titleInput textinput.Model
	tagsInput  textinput.Model
	focus      int

	// overlay state
	confirmID    string
	confirmTitle string
	linkInput    textinput.Model

	status string
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, nb *notebook.Notebook, kv store.KV) error {
	m := newModel(ctx, nb, kv)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()

	// Quitting is an explicit action, worth more than the trailing edge of
	// the debounce: write whatever is pending before the process exits.
	if ferr := nb.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func newModel(ctx context.Context, nb *notebook.Notebook, kv store.KV) *Model {
	dark := nb.Theme()
	if _, ok := kv.Load(store.ThemeKey); !ok {
		dark = termenv.HasDarkBackground()
	}

	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/"

	title := textinput.New()
	title.Placeholder = note.DefaultTitle
	title.Prompt = ""

	tags := textinput.New()
	tags.Placeholder = "tags, comma, separated"
	tags.Prompt = ""

	link := textinput.New()
	link.Placeholder = "https://"
	link.Prompt = ""

	surf := surface.New()

	m := &Model{
		ctx:        ctx,
		nb:         nb,
		kv:         kv,
		th:         theme.New(dark),
		keys:       defaultKeyMap(),
		search:     search,
		titleInput: title,
		tagsInput:  tags,
		linkInput:  link,
		surf:       surf,
		sess:       session.New(surf),
	}

	if w, ok := kv.(store.Watcher); ok {
		if ch, err := w.Watch(ctx); err == nil {
			m.events = ch
		}
	}

	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return waitForChange(m.events)
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return externalChangeMsg(ev)
	}
}

func dirtyTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return dirtyTickMsg{}
	})
}

// refresh recomputes the derived list from the store and current filters.
func (m *Model) refresh() {
	m.visible = view.Filter(m.nb.Notes(), m.query, m.tagFilter)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surf.SetSize(msg.Width-6, msg.Height-8)
		m.titleInput.Width = msg.Width - 10
		m.tagsInput.Width = msg.Width - 10
		return m, nil

	case externalChangeMsg:
		if msg.Key == store.NotesKey && !m.sess.Editing() && !m.nb.Dirty() {
			m.nb.Reload()
			m.refresh()
		}
		return m, waitForChange(m.events)

	case dirtyTickMsg:
		if m.nb.Dirty() {
			return m, dirtyTick()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeLinkPrompt:
			return m.updateLinkPrompt(msg)
		}
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		n := m.nb.Create()
		m.openEditor(n)
		return m, dirtyTick()

	case key.Matches(msg, m.keys.Open):
		if n, ok := m.selected(); ok {
			m.openEditor(n)
		}

	case key.Matches(msg, m.keys.Pin):
		if n, ok := m.selected(); ok {
			m.nb.TogglePin(n.ID)
			m.refresh()
			return m, dirtyTick()
		}

	case key.Matches(msg, m.keys.Duplicate):
		if n, ok := m.selected(); ok {
			m.nb.Duplicate(n.ID)
			m.refresh()
			return m, dirtyTick()
		}

	case key.Matches(msg, m.keys.Delete):
		if n, ok := m.selected(); ok {
			m.confirmID = n.ID
			m.confirmTitle = n.Title
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.query)
		m.search.Focus()

	case key.Matches(msg, m.keys.Tag):
		m.cycleTagFilter()
		m.refresh()

	case key.Matches(msg, m.keys.Theme):
		dark := !m.th.Dark
		m.th = theme.New(dark)
		if err := m.nb.SetTheme(dark); err != nil {
			m.status = fmt.Sprintf("theme not saved: %v", err)
		}

	case key.Matches(msg, m.keys.Cancel):
		if m.query != "" || m.tagFilter != "" {
			m.query = ""
			m.tagFilter = ""
			m.refresh()
		}
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.search.Blur()
		return m, nil
	case "esc":
		m.mode = modeList
		m.search.Blur()
		m.search.SetValue("")
		m.query = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query = m.search.Value()
	m.refresh()
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.sess.TitleInput = m.titleInput.Value()
		m.sess.TagInput = m.tagsInput.Value()
		if r, ok := m.sess.Save(); ok {
			m.nb.Update(r.ID, notebook.Patch{
				Title:     r.Title,
				Content:   r.Content,
				Tags:      r.Tags,
				UpdatedAt: m.nb.Now(),
			})
		}
		m.closeEditor()
		return m, dirtyTick()

	case key.Matches(msg, m.keys.Cancel):
		m.sess.Cancel()
		m.closeEditor()
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.sess.TogglePreview()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if !m.sess.Preview() {
			m.setFocus((m.focus + 1) % 3)
		}
		return m, nil

	case key.Matches(msg, m.keys.Bold):
		m.sess.ApplyFormatting(session.CmdBold, staticPrompter{})
		return m, nil
	case key.Matches(msg, m.keys.Italic):
		m.sess.ApplyFormatting(session.CmdItalic, staticPrompter{})
		return m, nil
	case key.Matches(msg, m.keys.Underline):
		m.sess.ApplyFormatting(session.CmdUnderline, staticPrompter{})
		return m, nil
	case key.Matches(msg, m.keys.Heading):
		m.sess.ApplyFormatting(session.CmdHeading, staticPrompter{})
		return m, nil
	case key.Matches(msg, m.keys.List):
		m.sess.ApplyFormatting(session.CmdList, staticPrompter{})
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.sess.ApplyFormatting(session.CmdClearFormat, staticPrompter{})
		return m, nil

	case key.Matches(msg, m.keys.Link):
		if !m.sess.Preview() {
			m.linkInput.SetValue("")
			m.linkInput.Focus()
			m.mode = modeLinkPrompt
		}
		return m, nil
	}

	if m.sess.Preview() {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusTags:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	default:
		cmd = m.surf.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.nb.Delete(m.confirmID)
		m.sess.ForgetIf(m.confirmID)
		m.confirmID = ""
		m.mode = modeList
		m.refresh()
		return m, dirtyTick()
	case "n", "N", "esc", "q":
		m.confirmID = ""
		m.mode = modeList
	}
	return m, nil
}

func (m *Model) updateLinkPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		url := strings.TrimSpace(m.linkInput.Value())
		m.sess.ApplyFormatting(session.CmdLink, staticPrompter{text: url})
		m.linkInput.Blur()
		m.mode = modeEdit
		return m, nil
	case "esc":
		m.linkInput.Blur()
		m.mode = modeEdit
		return m, nil
	}

	var cmd tea.Cmd
	m.linkInput, cmd = m.linkInput.Update(msg)
	return m, cmd
}

func (m *Model) selected() (note.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return note.Note{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) openEditor(n note.Note) {
	m.sess.Open(n)
	m.titleInput.SetValue(m.sess.TitleInput)
	m.tagsInput.SetValue(m.sess.TagInput)
	m.setFocus(focusBody)
	m.mode = modeEdit
	m.refresh()
}

func (m *Model) closeEditor() {
	m.titleInput.SetValue("")
	m.tagsInput.SetValue("")
	m.titleInput.Blur()
	m.tagsInput.Blur()
	m.surf.Blur()
	m.mode = modeList
	m.refresh()
}

func (m *Model) setFocus(f int) {
	m.focus = f
	m.titleInput.Blur()
	m.tagsInput.Blur()
	m.surf.Blur()
	switch f {
	case focusTitle:
		m.titleInput.Focus()
	case focusTags:
		m.tagsInput.Focus()
	default:
		m.surf.Focus()
	}
}

// cycleTagFilter steps filter → each tag in the universe → off.
func (m *Model) cycleTagFilter() {
	universe := view.TagUniverse(m.nb.Notes())
	if len(universe) == 0 {
		m.tagFilter = ""
		return
	}
	if m.tagFilter == "" {
		m.tagFilter = universe[0]
		return
	}
	for i, t := range universe {
		if t == m.tagFilter {
			if i+1 < len(universe) {
				m.tagFilter = universe[i+1]
			} else {
				m.tagFilter = ""
			}
			return
		}
	}
	m.tagFilter = ""
}
