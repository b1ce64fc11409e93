package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/port"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "import a journal document",
		Long:  "Import a journal export. Older document shapes are migrated; an unrecognized document is rejected without touching the stores.",
		Example: `
moodlog import backup.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := port.Import{Path: args[0], Stores: st}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export the journal as a document",
		Example: `
moodlog export
moodlog export backup.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := port.Export{Stores: st}
			if len(args) > 0 {
				s.Path = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
