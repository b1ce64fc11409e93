package stats

import (
	"sort"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

// CurrentStreak counts consecutive calendar days with at least one entry,
// walking backward from today. A day without an entry breaks the walk; when
// today itself has no entry the streak is 0, a lapsed streak does not count
// days before the gap.
func CurrentStreak(items []entry.Entry, now time.Time) int {
	days := entryDays(items)

	streak := 0
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	for days[day.Format(layoutISO)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak finds the maximum run of consecutive calendar days with
// entries anywhere in the journal; the run does not need to be current.
func LongestStreak(items []entry.Entry) int {
	daySet := entryDays(items)
	if len(daySet) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		t, err := time.ParseInLocation(layoutISO, day, time.Local)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	var prev time.Time
	for i, day := range days {
		// AddDate instead of a fixed 24h so DST-length days still chain.
		if i > 0 && day.Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

func entryDays(items []entry.Entry) map[string]bool {
	days := make(map[string]bool, len(items))
	for _, item := range items {
		if day := item.Day(); day != "" {
			days[day] = true
		}
	}
	return days
}
