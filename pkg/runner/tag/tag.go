// Package tag holds the catalog maintenance runners: listing, creating,
// archiving, and deleting tags and categories.
package tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/tags"
)

type List struct {
	All     bool
	Catalog *tags.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not list tags, no store")
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	st := n.Catalog.State()
	fmt.Println("")
	for _, c := range st.Categories {
		fmt.Printf("%s %s\n", c.Icon, bold.Sprint(c.Name))

		tbl := uitable.New()
		tbl.Separator = "  "
		count := 0
		for _, t := range st.Tags {
			if t.CategoryID != c.ID {
				continue
			}
			if t.IsArchived && !n.All {
				continue
			}
			title := t.Title
			if t.IsArchived {
				title = faint.Sprintf("%s (archived)", title)
			}
			tbl.AddRow(title, faint.Sprint(t.ID))
			count++
		}
		if count == 0 {
			faint.Println("  none")
		} else {
			fmt.Println(tbl)
		}
		fmt.Println("")
	}
	return nil
}

type Create struct {
	Category string
	Title    string
	Color    string
	Catalog  *tags.Store
}

// Do creates the tag in the named category. Category accepts an id or a name;
// empty selects the default category.
func (n *Create) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not create a tag, no store")
	}

	categoryID, err := n.categoryID()
	if err != nil {
		return err
	}

	t, err := n.Catalog.CreateTag(categoryID, n.Title, n.Color)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s)\n", t.Title, t.ID)
	return nil
}

func (n *Create) categoryID() (string, error) {
	st := n.Catalog.State()
	if n.Category == "" {
		for _, c := range st.Categories {
			if c.IsDefault {
				return c.ID, nil
			}
		}
		return "", errors.New("no default category")
	}
	for _, c := range st.Categories {
		if c.ID == n.Category || c.Name == n.Category {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", n.Category)
}

type Archive struct {
	ID      string
	Catalog *tags.Store
}

func (n *Archive) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not archive a tag, no store")
	}
	if _, ok := n.Catalog.TagByID(n.ID); !ok {
		return fmt.Errorf("no tag with id %q", n.ID)
	}
	if err := n.Catalog.ArchiveTag(n.ID); err != nil {
		return err
	}
	fmt.Printf("archived %s\n", n.ID)
	return nil
}

type Delete struct {
	ID       string
	Category bool
	Catalog  *tags.Store
}

// Do hard-deletes a tag, or a whole category with --category. Entry
// references to the deleted tags are stripped.
func (n *Delete) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not delete, no store")
	}

	if n.Category {
		c, ok := n.Catalog.CategoryByID(n.ID)
		if !ok {
			return fmt.Errorf("no category with id %q", n.ID)
		}
		if c.IsDefault {
			return errors.New("default categories can not be deleted")
		}
		n.Catalog.DeleteCategory(n.ID)
		fmt.Printf("deleted category %s\n", c.Name)
		return nil
	}

	t, ok := n.Catalog.TagByID(n.ID)
	if !ok {
		return fmt.Errorf("no tag with id %q", n.ID)
	}
	n.Catalog.DeleteTag(n.ID)
	fmt.Printf("deleted %s\n", t.Title)
	return nil
}

type CreateCategory struct {
	Name    string
	Color   string
	Icon    string
	Catalog *tags.Store
}

func (n *CreateCategory) Do(ctx context.Context) error {
	if n.Catalog == nil {
		return errors.New("can not create a category, no store")
	}
	c, err := n.Catalog.CreateCategory(n.Name, n.Color, n.Icon)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s)\n", c.Name, c.ID)
	return nil
}
