package options

import (
	"github.com/spf13/cobra"
)

// RangeOptions selects how much history a command covers.
type RangeOptions struct {
	All   bool
	Month bool
	Year  bool
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Cover every logged day.")
	cmd.Flags().BoolVar(&o.Month, "month", false,
		"Render the month grid.")
	cmd.Flags().BoolVar(&o.Year, "year", false,
		"Render all twelve month grids.")
}
