// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the query and tag filters list-style commands take.
type FilterOptions struct {
	Query string
	Tag   string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Filter notes whose title or body contains the query.")
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Filter notes carrying the exact tag.")
}
