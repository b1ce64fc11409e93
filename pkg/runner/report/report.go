// Package report renders the statistics screen: streaks, band summary,
// rating histogram, peaks, and tag distribution.
package report

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/stats"
	"tableflip.dev/moodlog/pkg/tags"
)

type Report struct {
	Peaks   bool
	Tags    bool
	Logs    *logs.Store
	Catalog *tags.Store
}

func (n *Report) Do(ctx context.Context) error {
	if n.Logs == nil {
		return errors.New("can not report, no store")
	}

	items := n.Logs.Items()
	now := time.Now()

	pp := printers.PrettyPrint{}
	pp.NewLine()

	avg := stats.MoodAvg(items)
	pp.Title("Mood")
	pp.Summary(avg, stats.CurrentStreak(items, now), stats.LongestStreak(items))
	pp.Histogram(avg)

	if n.Peaks {
		pp.Title("Best days")
		pp.Days(stats.MoodPeaksPositive(items))
		pp.Title("Worst days")
		pp.Days(stats.MoodPeaksNegative(items))
	}

	if n.Tags && n.Catalog != nil {
		pp.Title("Tags")
		pp.TagsTable(stats.TagsDistribution(items, n.Catalog.State().Tags))
	}

	return nil
}
