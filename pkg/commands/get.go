package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "get logged entries",
		Example: `
moodlog get
moodlog get --on 2/28
moodlog get --all
moodlog get --month
moodlog get --year
`,
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

			s := get.Get{
				ShowID:  io.ShowID,
				All:     ro.All,
				Month:   ro.Month,
				Year:    ro.Year,
				Logs:    st.Logs,
				Catalog: st.Tags,
			}
			if on != nil {
				s.On = *on
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, ro)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
