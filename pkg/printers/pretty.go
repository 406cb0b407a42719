// Package printers renders notes for terminal output.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/quill/pkg/note"
	"tableflip.dev/quill/pkg/timeutil"
)

const pinGlyph = "★"

// PrettyPrint writes colored note listings to stdout.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold, underlined section heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithCount prints a heading with a faint note tally.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" note")
	default:
		_, _ = c.Println(" notes")
	}
}

// Notes prints one line per note: pin marker, title, tags, age.
func (pp *PrettyPrint) Notes(notes ...note.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	now := time.Now()
	pin := color.New(color.FgHiYellow)
	plain := color.New()
	faint := color.New(color.Faint)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, n := range notes {
		if pp.ShowID {
			_, _ = id.Printf("%s  ", n.ID)
		}
		marker := " "
		if n.Pinned {
			marker = pinGlyph
		}
		_, _ = pin.Print(marker + " ")
		_, _ = plain.Print(n.Title)
		if len(n.Tags) > 0 {
			_, _ = faint.Printf("  [%s]", strings.Join(n.Tags, ", "))
		}
		_, _ = faint.Printf("  %s\n", timeutil.Relative(n.UpdatedAt, now))
	}
	_, _ = plain.Println("")
}

// Table renders notes as an aligned table, for wide listings.
func (pp *PrettyPrint) Table(notes []note.Note) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true

	if pp.ShowID {
		table.AddRow("ID", "PIN", "TITLE", "TAGS", "UPDATED")
	} else {
		table.AddRow("PIN", "TITLE", "TAGS", "UPDATED")
	}

	now := time.Now()
	for _, n := range notes {
		marker := ""
		if n.Pinned {
			marker = pinGlyph
		}
		tags := strings.Join(n.Tags, ", ")
		age := timeutil.Relative(n.UpdatedAt, now)
		if pp.ShowID {
			table.AddRow(n.ID, marker, n.Title, tags, age)
		} else {
			table.AddRow(marker, n.Title, tags, age)
		}
	}
	fmt.Println(table)
}

// Tags prints the tag universe as a faint comma list.
func (pp *PrettyPrint) Tags(tags []string) {
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n")
		return
	}
	c := color.New(color.FgCyan)
	_, _ = c.Println(strings.Join(tags, ", "))
}
