package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [rating] [notes]",
		Short: "add a mood entry",
		Long: fmt.Sprintf("Log how you feel on the 1..%d scale, %d being neutral.",
			entry.NumberOfRatings, entry.NeutralRating),
		Example: `
moodlog add 6 "great ride in the hills"
moodlog add 2 --tag travail --on 2/28
moodlog add --rating 5 --rating 7 --sleep 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			r, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rating %q is not a number", args[0])
			}
			eo.Rating = append(eo.Rating, r)
			if len(args) > 1 {
				eo.Notes = strings.Join(args[1:], " ")
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

			s := add.Add{
				Rating:  eo.Rating,
				Notes:   eo.Notes,
				TagIDs:  eo.Tags,
				Sleep:   eo.Sleep,
				ShowID:  io.ShowID,
				Logs:    st.Logs,
				Catalog: st.Tags,
			}
			if on != nil {
				s.When = *on
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
