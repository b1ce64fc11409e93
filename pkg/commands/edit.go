package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	var notes string

	cmd := &cobra.Command{
		Use:   "edit <id> [notes]",
		Short: "edit an entry",
		Example: `
moodlog edit 171dff69-f8b9-4dca-83dc-b8a2eb3b6945 --rating 5
moodlog edit 171dff69-f8b9-4dca-83dc-b8a2eb3b6945 "better than I thought"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an entry id")
			}
			io.ID = args[0]
			if len(args) > 1 {
				notes = strings.Join(args[1:], " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := edit.Edit{
				ID:     io.ID,
				Rating: eo.Rating,
				When:   on,
				ShowID: io.ShowID,
				Logs:   st.Logs,
			}
			if notes != "" || cmd.Flags().Changed("notes") {
				if cmd.Flags().Changed("notes") {
					notes = eo.Notes
				}
				s.Notes = &notes
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
