package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
)

// PrettyPrint renders entries and statistic cards on the terminal. TagTitle
// resolves a tag id to its display title; when nil the raw id is printed.
type PrettyPrint struct {
	ShowID   bool
	TagTitle func(id string) string
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-4dca-83dc-b8a2eb3b6945  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) Entries(items ...entry.Entry) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range items {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Printf("%s %s %s", ratingSymbols(e), e.DateTime.Local().Format("15:04"), e.Notes)
		if len(e.Tags) > 0 {
			_, _ = f.Printf("  %s", strings.Join(pp.tagTitles(e), " "))
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// ratingSymbols joins the mood glyph of every rating value on the entry.
func ratingSymbols(e entry.Entry) string {
	if len(e.Rating) == 0 {
		return "·"
	}
	b := strings.Builder{}
	for _, r := range e.Rating {
		b.WriteString(glyph.ForRating(r).Symbol)
	}
	return b.String()
}

func (pp *PrettyPrint) tagTitles(e entry.Entry) []string {
	out := make([]string, 0, len(e.Tags))
	for _, ref := range e.Tags {
		title := ref.TagID
		if pp.TagTitle != nil {
			if t := pp.TagTitle(ref.TagID); t != "" {
				title = t
			}
		}
		out = append(out, "#"+title)
	}
	return out
}
