package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	var id string

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "remove an entry",
		Example: `
moodlog remove 171dff69-f8b9-4dca-83dc-b8a2eb3b6945
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := remove.Remove{
				ID:   id,
				Logs: st.Logs,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
