package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/config"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"settings"},
		Short:   "show and change preferences",
		Example: `
moodlog config
moodlog config theme dark
moodlog config palette --list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := config.Show{Settings: st.Settings}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addConfigTheme(cmd)
	addConfigPalette(cmd)
	addConfigReminder(cmd)
	addConfigStep(cmd)

	topLevel.AddCommand(cmd)
}

func addConfigTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme <light|dark|system>",
		Short:     "set the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark", "system"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := config.Theme{Theme: args[0], Settings: st.Settings}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addConfigPalette(topLevel *cobra.Command) {
	list := false
	custom := []string{}

	cmd := &cobra.Command{
		Use:   "palette [preset]",
		Short: "select the mood color scale",
		Example: `
moodlog config palette --list
moodlog config palette sunset
moodlog config palette --custom "#111,#222,#333,#444,#555,#666,#777"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := config.Palette{
				Custom:   custom,
				List:     list,
				Settings: st.Settings,
			}
			if len(args) > 0 {
				s.Preset = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the built-in palettes.")
	cmd.Flags().StringSliceVar(&custom, "custom", nil, "Custom color scale, lowest rating first.")

	topLevel.AddCommand(cmd)
}

func addConfigReminder(topLevel *cobra.Command) {
	off := false
	at := ""

	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "set the daily reminder",
		Example: `
moodlog config reminder --at 21:00
moodlog config reminder --off
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := config.Reminder{Enabled: !off, At: at, Settings: st.Settings}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Disable the reminder.")
	cmd.Flags().StringVar(&at, "at", "", "Reminder time, HH:MM.")

	topLevel.AddCommand(cmd)
}

func addConfigStep(topLevel *cobra.Command) {
	on := false
	off := false

	cmd := &cobra.Command{
		Use:       "step <rating|tags|sleep|message>",
		Short:     "toggle a logging-flow step",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"rating", "tags", "sleep", "message"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if on && off {
				return errors.New("--on and --off are mutually exclusive")
			}

			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := config.Step{Step: args[0], Settings: st.Settings}
			if on {
				v := true
				s.Enable = &v
			}
			if off {
				v := false
				s.Enable = &v
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&on, "on", false, "Force the step on.")
	cmd.Flags().BoolVar(&off, "off", false, "Force the step off.")

	topLevel.AddCommand(cmd)
}
