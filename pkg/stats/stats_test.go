package stats

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
	"tableflip.dev/moodlog/pkg/tags"
)

// now is a fixed reference instant for streak and trend scenarios.
var now = time.Date(2022, 1, 12, 15, 0, 0, 0, time.Local)

func on(t *testing.T, date string, rating ...int) entry.Entry {
	t.Helper()
	at, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("fixture date %q: %v", date, err)
	}
	at = at.Add(12 * time.Hour)
	return *entry.New(at, rating, "")
}

func TestCurrentStreak(t *testing.T) {
	items := []entry.Entry{
		on(t, "2022-01-08", 4),
		on(t, "2022-01-09", 5),
		on(t, "2022-01-10", 3),
		on(t, "2022-01-10", 6), // second entry the same day
		on(t, "2022-01-11", 4),
		on(t, "2022-01-12", 5),
		on(t, "2022-01-01", 4), // before the gap, does not count
	}
	if got := CurrentStreak(items, now); got != 5 {
		t.Errorf("CurrentStreak = %d, want 5", got)
	}
}

func TestCurrentStreakZeroWhenTodayMissing(t *testing.T) {
	items := []entry.Entry{
		on(t, "2022-01-10", 4),
		on(t, "2022-01-11", 5),
	}
	if got := CurrentStreak(items, now); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0 without an entry today", got)
	}
}

func TestLongestStreak(t *testing.T) {
	items := make([]entry.Entry, 0)
	// An 8 day run in December, no longer current.
	for day := 20; day <= 27; day++ {
		items = append(items, on(t, time.Date(2021, 12, day, 0, 0, 0, 0, time.Local).Format("2006-01-02"), 4))
	}
	// The current 3 day run.
	items = append(items,
		on(t, "2022-01-10", 5),
		on(t, "2022-01-11", 5),
		on(t, "2022-01-12", 5),
	)

	if got := LongestStreak(items); got != 8 {
		t.Errorf("LongestStreak = %d, want 8", got)
	}
	if got := LongestStreak(nil); got != 0 {
		t.Errorf("LongestStreak(nil) = %d, want 0", got)
	}
}

func TestLogDaysExcludesRatinglessDays(t *testing.T) {
	noRating := on(t, "2022-01-09")
	items := []entry.Entry{
		noRating,
		on(t, "2022-01-10", 4, 5),
		on(t, "2022-01-10", 6),
	}

	days := LogDays(items)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].Date != "2022-01-10" {
		t.Errorf("Date = %q", days[0].Date)
	}
	// mean(4, 5, 6) = 5
	if days[0].RatingAvg != 5 {
		t.Errorf("RatingAvg = %d, want 5", days[0].RatingAvg)
	}
}

func TestLogDaysMetricsAverage(t *testing.T) {
	a := on(t, "2022-01-10", 4)
	a.Metrics = map[string][]float64{"sleep": {3}}
	b := on(t, "2022-01-10", 5)
	b.Metrics = map[string][]float64{"sleep": {4}}

	days := LogDays([]entry.Entry{a, b})
	if got := days[0].MetricsAvg["sleep"]; got != 3.5 {
		t.Errorf("sleep avg = %v, want 3.5", got)
	}
}

func TestAverageMood(t *testing.T) {
	if _, ok := AverageMood(nil); ok {
		t.Error("expected no average for no entries")
	}
	avg, ok := AverageMood([]entry.Entry{on(t, "2022-01-10", 4, 5)})
	if !ok || avg != 5 {
		t.Errorf("AverageMood = %d,%v want 5,true", avg, ok)
	}
}

func TestMoodAvgBandsAndHistogram(t *testing.T) {
	items := []entry.Entry{
		on(t, "2022-01-01", 2), // negative day
		on(t, "2022-01-02", 3), // negative day
		on(t, "2022-01-03", 6), // positive day
		on(t, "2022-01-04", 4), // neutral day
	}

	data := MoodAvg(items)
	if data.HighestBand != glyph.Negative {
		t.Errorf("HighestBand = %s, want negative", data.HighestBand)
	}
	if data.HighestPercentage != 50 {
		t.Errorf("HighestPercentage = %d, want 50", data.HighestPercentage)
	}
	if data.ItemsCount != 4 {
		t.Errorf("ItemsCount = %d, want 4", data.ItemsCount)
	}

	counts := map[int]int{}
	for _, b := range data.Distribution {
		counts[b.Rating] = b.Count
	}
	if counts[2] != 1 || counts[3] != 1 || counts[4] != 1 || counts[6] != 1 || counts[7] != 0 {
		t.Errorf("Distribution = %v", data.Distribution)
	}
}

func TestMoodAvgTieFavorsPositive(t *testing.T) {
	items := []entry.Entry{
		on(t, "2022-01-01", 2),
		on(t, "2022-01-02", 6),
	}
	if got := MoodAvg(items).HighestBand; got != glyph.Positive {
		t.Errorf("HighestBand = %s, want positive on a tie", got)
	}
}

func TestMoodAvgEmpty(t *testing.T) {
	data := MoodAvg(nil)
	if data.HighestPercentage != 0 || data.ItemsCount != 0 {
		t.Errorf("empty MoodAvg = %+v", data)
	}
}

func TestMoodPeaks(t *testing.T) {
	items := []entry.Entry{
		on(t, "2022-01-01", 2),
		on(t, "2022-01-02", 4),
		on(t, "2022-01-03", 6),
	}

	pos := MoodPeaksPositive(items)
	if len(pos) != 1 || pos[0].Date != "2022-01-03" {
		t.Errorf("positive peaks = %+v", pos)
	}
	neg := MoodPeaksNegative(items)
	if len(neg) != 1 || neg[0].Date != "2022-01-01" {
		t.Errorf("negative peaks = %+v", neg)
	}
}

func TestMoodTrendEmptyIsSteady(t *testing.T) {
	data := MoodTrend(nil, now)
	if data.Status != TrendSteady {
		t.Errorf("Status = %s, want steady", data.Status)
	}
	if data.AvgPeriod1 != defaultWeekAvg || data.AvgPeriod2 != defaultWeekAvg {
		t.Errorf("averages = %v, %v want the neutral default", data.AvgPeriod1, data.AvgPeriod2)
	}
	if len(data.Period1) != TrendWeeks/2 || len(data.Period2) != TrendWeeks/2 {
		t.Errorf("period sizes = %d, %d", len(data.Period1), len(data.Period2))
	}
	if data.Diff != 0 {
		t.Errorf("Diff = %v, want 0", data.Diff)
	}
}

func TestMoodTrendImproved(t *testing.T) {
	items := []entry.Entry{
		on(t, "2022-01-10", 7),
		on(t, "2022-01-11", 7),
	}
	data := MoodTrend(items, now)
	if data.Status != TrendImproved {
		t.Errorf("Status = %s, want improved", data.Status)
	}
	if data.AvgPeriod2 <= data.AvgPeriod1 {
		t.Errorf("AvgPeriod2 = %v not above AvgPeriod1 = %v", data.AvgPeriod2, data.AvgPeriod1)
	}
}

func TestMoodTrendDeclined(t *testing.T) {
	items := []entry.Entry{
		on(t, "2022-01-10", 1),
		on(t, "2022-01-11", 1),
	}
	data := MoodTrend(items, now)
	if data.Status != TrendDeclined {
		t.Errorf("Status = %s, want declined", data.Status)
	}
}

func TestTagsDistribution(t *testing.T) {
	t1 := tags.Tag{ID: "t1", Title: "Sport"}
	t2 := tags.Tag{ID: "t2", Title: "Travail"}

	a := on(t, "2022-01-10", 4)
	a.Tags = []entry.TagRef{{TagID: "t1"}, {TagID: "t2"}}
	b := on(t, "2022-01-11", 5)
	b.Tags = []entry.TagRef{{TagID: "t1"}, {TagID: "gone"}}

	rows := TagsDistribution([]entry.Entry{a, b}, []tags.Tag{t1, t2})
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].TagID != "t1" || rows[0].Count != 2 || rows[0].Missing {
		t.Errorf("top row = %+v", rows[0])
	}

	var missing bool
	for _, row := range rows {
		if row.TagID == "gone" {
			missing = row.Missing
		}
	}
	if !missing {
		t.Error("deleted tag not flagged as missing")
	}

	want := []int{2, 1, 1}
	got := []int{rows[0].Count, rows[1].Count, rows[2].Count}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("counts = %v, want %v", got, want)
	}
}
