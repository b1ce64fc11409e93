package stats

import (
	"math"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
)

// RatingCount is one bucket of the raw per-rating-value histogram.
type RatingCount struct {
	Rating int
	Count  int
}

// MoodAvgData summarizes how days distribute over the mood bands plus the raw
// histogram of every recorded rating value.
type MoodAvgData struct {
	HighestBand       glyph.Band
	HighestPercentage int
	Distribution      []RatingCount
	ItemsCount        int
}

// MoodAvg buckets each day's average rating into the negative/neutral/
// positive bands, reports the share of the most frequent band, and counts how
// many recorded rating values equal each scale value (raw values across all
// entries, not per-day averages).
func MoodAvg(items []entry.Entry) MoodAvgData {
	bands := map[glyph.Band]int{
		glyph.Negative: 0,
		glyph.Neutral:  0,
		glyph.Positive: 0,
	}

	for _, day := range LogDays(items) {
		bands[glyph.BandFor(float64(day.RatingAvg))]++
	}

	daysTotal := bands[glyph.Negative] + bands[glyph.Neutral] + bands[glyph.Positive]

	distribution := make([]RatingCount, 0, entry.NumberOfRatings)
	valuesTotal := 0
	for rating := 1; rating <= entry.NumberOfRatings; rating++ {
		count := 0
		for _, item := range items {
			for _, r := range item.Rating {
				if r == rating {
					count++
				}
			}
		}
		distribution = append(distribution, RatingCount{Rating: rating, Count: count})
		valuesTotal += count
	}

	// Ties resolve toward the more positive band: the fixed evaluation
	// order is negative, neutral, positive and a later band displaces an
	// earlier one unless the earlier count is strictly greater.
	highest := glyph.Negative
	for _, band := range []glyph.Band{glyph.Neutral, glyph.Positive} {
		if bands[highest] > bands[band] {
			continue
		}
		highest = band
	}

	percentage := 0
	if daysTotal > 0 {
		percentage = int(math.Round(float64(bands[highest]) / float64(daysTotal) * 100))
	}

	return MoodAvgData{
		HighestBand:       highest,
		HighestPercentage: percentage,
		Distribution:      distribution,
		ItemsCount:        valuesTotal,
	}
}
