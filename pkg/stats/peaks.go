package stats

import (
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
)

// MoodPeaksPositive returns the days whose average rating reaches the upper
// band of the scale.
func MoodPeaksPositive(items []entry.Entry) []LogDay {
	peaks := make([]LogDay, 0)
	for _, day := range LogDays(items) {
		if day.RatingAvg >= glyph.PositiveMin {
			peaks = append(peaks, day)
		}
	}
	return peaks
}

// MoodPeaksNegative returns the days whose average rating sits in the lower
// band of the scale.
func MoodPeaksNegative(items []entry.Entry) []LogDay {
	peaks := make([]LogDay, 0)
	for _, day := range LogDays(items) {
		if day.RatingAvg <= glyph.NegativeMax {
			peaks = append(peaks, day)
		}
	}
	return peaks
}
