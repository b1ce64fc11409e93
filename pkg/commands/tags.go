package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/tag"
)

func addTags(topLevel *cobra.Command) {
	all := false

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "list and maintain the tag catalog",
		Example: `
moodlog tags
moodlog tags --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := tag.List{All: all, Catalog: st.Tags}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived tags.")

	addTagsAdd(cmd)
	addTagsArchive(cmd)
	addTagsRemove(cmd)
	addTagsCategory(cmd)

	topLevel.AddCommand(cmd)
}

func addTagsAdd(topLevel *cobra.Command) {
	category := ""
	colorName := ""
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "add a tag",
		Example: `
moodlog tags add Vélo
moodlog tags add Yoga --category Activités --color green
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a tag title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := tag.Create{
				Category: category,
				Title:    title,
				Color:    colorName,
				Catalog:  st.Tags,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name or id; empty means the default category.")
	cmd.Flags().StringVar(&colorName, "color", "", "Tag color name.")

	topLevel.AddCommand(cmd)
}

func addTagsArchive(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "archive a tag, keeping it on past entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := tag.Archive{ID: args[0], Catalog: st.Tags}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTagsRemove(topLevel *cobra.Command) {
	category := false

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "delete a tag and strip it from every entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := tag.Delete{ID: args[0], Category: category, Catalog: st.Tags}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&category, "category", false, "Delete a whole category and its tags.")

	topLevel.AddCommand(cmd)
}

func addTagsCategory(topLevel *cobra.Command) {
	colorName := ""
	icon := ""

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "add a category",
		Example: `
moodlog tags category Santé --color teal --icon 🩺
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := mount(context.Background())
			if err != nil {
				return err
			}
			defer st.Flush()

			s := tag.CreateCategory{
				Name:    strings.Join(args, " "),
				Color:   colorName,
				Icon:    icon,
				Catalog: st.Tags,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&colorName, "color", "", "Category color name.")
	cmd.Flags().StringVar(&icon, "icon", "", "Category icon.")

	topLevel.AddCommand(cmd)
}
