package glyph

import (
	"fmt"

	"tableflip.dev/moodlog/pkg/entry"
)

// Band buckets a day-average rating into the three mood bands used by the
// statistics cards. Thresholds are fixed relative to the scale midpoint.
type Band string

const (
	Negative Band = "negative"
	Neutral  Band = "neutral"
	Positive Band = "positive"
)

const (
	// NegativeMax is the highest day-average still counted as negative.
	NegativeMax = entry.NeutralRating - 1
	// PositiveMin is the lowest day-average counted as positive.
	PositiveMin = entry.NeutralRating + 1
)

// BandFor buckets a day-average rating.
func BandFor(avg float64) Band {
	switch {
	case avg <= float64(NegativeMax):
		return Negative
	case avg >= float64(PositiveMin):
		return Positive
	default:
		return Neutral
	}
}

type Glyph struct {
	Rating  int
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs maps each rating value on the 1..7 scale to a terminal mood
// symbol. Index i holds the glyph for rating i+1.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, entry.NumberOfRatings)

	g = append(g, Glyph{
		Rating:  1,
		Symbol:  "▁",
		Meaning: "extremely bad",
	}, Glyph{
		Rating:  2,
		Symbol:  "▂",
		Meaning: "very bad",
	}, Glyph{
		Rating:  3,
		Symbol:  "▃",
		Meaning: "bad",
	}, Glyph{
		Rating:  4,
		Symbol:  "▄",
		Meaning: "neutral",
	}, Glyph{
		Rating:  5,
		Symbol:  "▅",
		Meaning: "good",
	}, Glyph{
		Rating:  6,
		Symbol:  "▆",
		Meaning: "very good",
	}, Glyph{
		Rating:  7,
		Symbol:  "█",
		Meaning: "extremely good",
	})

	return g
}

// ForRating returns the glyph for a rating value, or a blank glyph for values
// off the scale.
func ForRating(rating int) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Rating == rating {
			return g
		}
	}
	return Glyph{Rating: rating, Symbol: "·", Meaning: "unknown"}
}

func (g Glyph) String() string {
	return g.Symbol
}
