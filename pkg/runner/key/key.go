// Package key displays the mood scale legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/glyph"
)

// Key prints the rating scale with its glyphs and meanings.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Rating"), bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	glyphs := glyph.DefaultGlyphs()
	for i := len(glyphs) - 1; i >= 0; i-- {
		g := glyphs[i]
		tbl.AddRow(g.Rating, g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
	return nil
}
