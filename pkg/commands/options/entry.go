package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the fields of one journal entry.
type EntryOptions struct {
	Rating []int
	Notes  string
	Tags   []string
	Sleep  float64
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().IntSliceVarP(&o.Rating, "rating", "r", nil,
		"Mood rating on the 1..7 scale; repeatable for multiple check-ins.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes for the entry.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the entry; accepts tag titles or ids.")
	cmd.Flags().Float64Var(&o.Sleep, "sleep", 0,
		"Sleep quality sample, 1..5.")
}
