package printers

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/glyph"
	"tableflip.dev/moodlog/pkg/stats"
)

const barWidth = 20

// Histogram renders the per-rating distribution as horizontal bars, best mood
// on top.
func (pp *PrettyPrint) Histogram(data stats.MoodAvgData) {
	max := 0
	for _, b := range data.Distribution {
		if b.Count > max {
			max = b.Count
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i := len(data.Distribution) - 1; i >= 0; i-- {
		b := data.Distribution[i]
		g := glyph.ForRating(b.Rating)
		tbl.AddRow(g.Symbol, g.Meaning, bar(b.Count, max), b.Count)
	}
	fmt.Println(tbl)
	fmt.Println("")
}

func bar(count, max int) string {
	if max == 0 || count == 0 {
		return ""
	}
	n := count * barWidth / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Summary renders the headline rows of the stats screen.
func (pp *PrettyPrint) Summary(avg stats.MoodAvgData, current, longest int) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("current streak"), days(current))
	tbl.AddRow(bold.Sprint("longest streak"), days(longest))
	if avg.ItemsCount > 0 {
		tbl.AddRow(bold.Sprint("mostly"), fmt.Sprintf("%s (%d%%)", avg.HighestBand, avg.HighestPercentage))
	}
	tbl.AddRow(bold.Sprint("ratings recorded"), fmt.Sprintf("%d", avg.ItemsCount))
	fmt.Println(tbl)
	fmt.Println("")
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// Trend renders the two-window comparison as a pair of week sparklines plus
// the verdict line.
func (pp *PrettyPrint) Trend(t stats.MoodTrendData) {
	f := color.New(color.Faint)

	_, _ = f.Print("earlier ")
	fmt.Print(sparkline(t.Period1))
	_, _ = f.Print("  recent ")
	fmt.Println(sparkline(t.Period2))

	switch t.Status {
	case stats.TrendImproved:
		color.New(color.FgGreen).Printf("↑ improved (+%.2f)\n", t.Diff)
	case stats.TrendDeclined:
		color.New(color.FgRed).Printf("↓ declined (-%.2f)\n", t.Diff)
	default:
		_, _ = f.Println("→ steady")
	}
	fmt.Println("")
}

// sparkline maps each weekly mean to the glyph of its nearest rating value.
func sparkline(points []stats.TrendPoint) string {
	b := strings.Builder{}
	for _, p := range points {
		b.WriteString(glyph.ForRating(int(math.Round(p.Value))).Symbol)
	}
	return b.String()
}

// TagsTable renders the tag usage distribution.
func (pp *PrettyPrint) TagsTable(rows []stats.TagCount) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold)
	f := color.New(color.Faint, color.Italic)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Count"))
	for _, row := range rows {
		title := row.Title
		if row.Missing {
			title = f.Sprintf("%s (deleted)", row.TagID)
		}
		tbl.AddRow(title, row.Count)
	}
	fmt.Println(tbl)
	fmt.Println("")
}

// Days renders day aggregates, one row per day with the day-average glyph.
func (pp *PrettyPrint) Days(daysList []stats.LogDay) {
	if len(daysList) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	for _, day := range daysList {
		_, _ = t.Printf("%s %s  avg %d\n", glyph.ForRating(day.RatingAvg).Symbol, day.Date, day.RatingAvg)
	}
	_, _ = t.Println("")
}
