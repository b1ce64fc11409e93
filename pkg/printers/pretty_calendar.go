package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/glyph"
)

const width = len("11 12 13 14 15 16 17") // an example week

const layoutISO = "2006-01-02"

// Calendar renders the month grid for the month containing on.
func (pp *PrettyPrint) Calendar(on time.Time, avgs map[string]int) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, avgs)
}

// CalendarYear renders all twelve month grids for the year containing on.
func (pp *PrettyPrint) CalendarYear(on time.Time, avgs map[string]int) {
	then := time.Date(on.Year(), 1, 1, 0, 0, 0, 0, time.Local)

	for i := 0; i < 12; i++ {
		pp.PrintMonth(then, avgs)
		then = NextMonth(then)
	}
}

// PrintMonth renders one month. Each day cell is colored by the day-average
// mood band from avgs (ISO date -> day average); days without an average are
// dimmed.
func (pp *PrettyPrint) PrintMonth(then time.Time, avgs map[string]int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	empty := color.New(color.Faint, color.FgWhite)
	low := color.New(color.Bold, color.FgRed)
	neutral := color.New(color.Bold, color.FgHiWhite)
	high := color.New(color.Bold, color.FgGreen)

	for i := 0; i < days; i++ {
		date := time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, time.Local).Format(layoutISO)

		printer := empty
		if avg, ok := avgs[date]; ok {
			switch glyph.BandFor(float64(avg)) {
			case glyph.Negative:
				printer = low
			case glyph.Positive:
				printer = high
			default:
				printer = neutral
			}
		}
		printer.Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
