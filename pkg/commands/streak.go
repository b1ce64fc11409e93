package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/streak"
)

func addStreak(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "current and longest logging streaks",
		Example: `
moodlog streak
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := streak.Streak{Logs: st.Logs}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
