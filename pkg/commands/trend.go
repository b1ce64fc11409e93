package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/trend"
)

func addTrend(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "compare the two most recent 12-week windows",
		Example: `
moodlog trend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := trend.Trend{Logs: st.Logs}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
