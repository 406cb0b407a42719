package tuiapp

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	New       key.Binding
	Pin       key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Search    key.Binding
	Tag       key.Binding
	Theme     key.Binding
	Quit      key.Binding

	Save    key.Binding
	Cancel  key.Binding
	Preview key.Binding
	Focus   key.Binding

	Bold      key.Binding
	Italic    key.Binding
	Underline key.Binding
	Heading   key.Binding
	List      key.Binding
	Link      key.Binding
	Clear     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Pin:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
		Duplicate: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "duplicate")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Tag:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tag filter")),
		Theme:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Preview: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "preview")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),

		Bold:      key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
		Italic:    key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline: key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "underline")),
		Heading:   key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "heading")),
		List:      key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "list item")),
		Link:      key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "link")),
		Clear:     key.NewBinding(key.WithKeys("alt+0"), key.WithHelp("alt+0", "clear format")),
	}
}
