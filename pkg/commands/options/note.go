package options

import (
	"github.com/spf13/cobra"
)

// NoteOptions seeds a new note from flags.
type NoteOptions struct {
	Title   string
	Tags    string
	Content string
}

// AddNoteArgs wires note seeding flags.
func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Title for the new note.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		"Comma separated tags for the new note.")
	cmd.Flags().StringVar(&o.Content, "content", "",
		"HTML body for the new note.")
}
