package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	entries := false
	tagsFlag := false
	settingsFlag := false
	force := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "clear the journal",
		Long:  "Clear the selected stores. With no selection the whole journal is reset and the device identity is regenerated.",
		Example: `
moodlog reset --entries
moodlog reset --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := reset.Reset{
				Entries:  entries,
				Tags:     tagsFlag,
				Settings: settingsFlag,
				Force:    force,
				Stores:   st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&entries, "entries", false, "Clear the entries.")
	cmd.Flags().BoolVar(&tagsFlag, "tags", false, "Clear the tag catalog.")
	cmd.Flags().BoolVar(&settingsFlag, "settings", false, "Restore default settings.")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}
