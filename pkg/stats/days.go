// Package stats derives read-only statistics from an entries snapshot:
// day aggregation, streaks, mood averages and peaks, trend windows, and tag
// distribution. Every function is pure and total: under-populated input
// yields a well-defined empty result, never an error or NaN.
package stats

import (
	"math"
	"sort"

	"tableflip.dev/moodlog/pkg/entry"
)

const layoutISO = "2006-01-02"

// LogDay is the per-calendar-day aggregation of a day's entries.
type LogDay struct {
	Date       string
	Items      []entry.Entry
	RatingAvg  int
	MetricsAvg map[string]float64
}

// AverageMood returns the rounded mean over all individual rating values of
// the given entries, flattened across entries. The second result is false
// when no rating values exist; an empty rating array contributes nothing and
// is never treated as zero.
func AverageMood(items []entry.Entry) (int, bool) {
	sum, count := 0, 0
	for _, item := range items {
		for _, r := range item.Rating {
			sum += r
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(count))), true
}

// LogDays groups entries by calendar day. Days without a single valid rating
// value are excluded. Output is sorted by date ascending.
func LogDays(items []entry.Entry) []LogDay {
	perDay := map[string][]entry.Entry{}
	for _, item := range items {
		day := item.Day()
		perDay[day] = append(perDay[day], item)
	}

	days := make([]LogDay, 0, len(perDay))
	for date, dayItems := range perDay {
		avg, ok := AverageMood(dayItems)
		if !ok {
			continue
		}
		days = append(days, LogDay{
			Date:       date,
			Items:      dayItems,
			RatingAvg:  avg,
			MetricsAvg: metricsAverage(dayItems),
		})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// metricsAverage computes the mean of each metric key present that day,
// rounded to two decimals.
func metricsAverage(items []entry.Entry) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, item := range items {
		for key, samples := range item.Metrics {
			for _, v := range samples {
				sums[key] += v
				counts[key]++
			}
		}
	}

	out := make(map[string]float64, len(sums))
	for key, sum := range sums {
		out[key] = math.Round(sum/float64(counts[key])*100) / 100
	}
	return out
}
