package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls id visibility in listings.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs registers the show-id flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show note ids in the output.")
}

// OutputOptions controls listing layout.
type OutputOptions struct {
	Table bool
}

// AddTableArgs registers the table layout flag.
func AddTableArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.Table, "table", false,
		"Render the listing as an aligned table.")
}

// ForceOptions skips interactive confirmation.
type ForceOptions struct {
	Force bool
}

// AddForceArgs registers the force flag.
func AddForceArgs(cmd *cobra.Command, o *ForceOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Skip the confirmation prompt.")
}
