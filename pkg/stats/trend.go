package stats

import (
	"math"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

const (
	// TrendWeeks is the total number of weekly sub-periods compared by the
	// trend card: two adjacent windows of TrendWeeks/2 weeks each.
	TrendWeeks = 24

	// defaultWeekAvg fills a week without data so sparse history does not
	// drag the window mean toward zero.
	defaultWeekAvg = float64(entry.NeutralRating)
)

type TrendStatus string

const (
	TrendImproved TrendStatus = "improved"
	TrendDeclined TrendStatus = "declined"
	TrendSteady   TrendStatus = "steady"
)

// TrendPoint is the mean of all raw rating values recorded in one week.
type TrendPoint struct {
	Week  time.Time
	Value float64
}

// MoodTrendData compares the two most recent 12-week windows.
type MoodTrendData struct {
	AvgPeriod1 float64
	AvgPeriod2 float64
	Period1    []TrendPoint
	Period2    []TrendPoint
	Diff       float64
	Status     TrendStatus
}

// MoodTrend splits the 24 weeks ending at now into two adjacent windows and
// compares their means. Each week's value is the mean of every raw rating
// value recorded in it, floored to two decimals, or the neutral constant when
// the week is empty. Equal window means report TrendSteady.
func MoodTrend(items []entry.Entry, now time.Time) MoodTrendData {
	period1 := make([]TrendPoint, 0, TrendWeeks/2)
	period2 := make([]TrendPoint, 0, TrendWeeks/2)

	for i := TrendWeeks / 2; i < TrendWeeks; i++ {
		period1 = append(period1, weekPoint(items, now, i))
	}
	for i := 0; i < TrendWeeks/2; i++ {
		period2 = append(period2, weekPoint(items, now, i))
	}

	avg1 := pointsMean(period1)
	avg2 := pointsMean(period2)

	status := TrendSteady
	switch {
	case avg1 < avg2:
		status = TrendImproved
	case avg1 > avg2:
		status = TrendDeclined
	}

	return MoodTrendData{
		AvgPeriod1: avg1,
		AvgPeriod2: avg2,
		Period1:    period1,
		Period2:    period2,
		Diff:       math.Abs(avg1 - avg2),
		Status:     status,
	}
}

// weekPoint aggregates the week starting i weeks before the week of now.
func weekPoint(items []entry.Entry, now time.Time, i int) TrendPoint {
	start := startOfWeek(now.AddDate(0, 0, -7*i))
	end := start.AddDate(0, 0, 7)

	sum, count := 0, 0
	for _, item := range items {
		at := item.DateTime.Local()
		if at.Before(start) || !at.Before(end) {
			continue
		}
		for _, r := range item.Rating {
			sum += r
			count++
		}
	}

	value := defaultWeekAvg
	if count > 0 {
		value = math.Floor(float64(sum)/float64(count)*100) / 100
	}
	return TrendPoint{Week: start, Value: value}
}

func pointsMean(points []TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

// startOfWeek returns local midnight of the Sunday starting t's week.
func startOfWeek(t time.Time) time.Time {
	t = t.Local()
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return t.AddDate(0, 0, -int(t.Weekday()))
}
