package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	peaks := false
	tagsFlag := false

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report"},
		Short:   "mood statistics",
		Example: `
moodlog stats
moodlog stats --peaks
moodlog stats --tags
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := report.Report{
				Peaks:   peaks,
				Tags:    tagsFlag,
				Logs:    st.Logs,
				Catalog: st.Tags,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&peaks, "peaks", false, "Show best and worst days.")
	cmd.Flags().BoolVar(&tagsFlag, "tags", false, "Show the tag usage distribution.")

	topLevel.AddCommand(cmd)
}
