package entry

import (
	"time"

	"github.com/google/uuid"
)

const (
	// NumberOfRatings is the size of the mood scale. Ratings run 1..NumberOfRatings.
	NumberOfRatings = 7

	// NeutralRating is the mid-scale value used when a rating is missing or
	// cannot be recovered during migration.
	NeutralRating = (NumberOfRatings + 1) / 2
)

const layoutISO = "2006-01-02"

// TagRef references a tag from the tag catalog by id. An entry may keep a
// reference to a tag that no longer exists; consumers treat those as missing.
type TagRef struct {
	TagID string `json:"tagId"`
}

// Entry is one journaled moment: one or more mood ratings, free-form notes,
// tag references, and optional numeric metric samples (e.g. sleep quality).
type Entry struct {
	ID       string               `json:"id"`
	Date     string               `json:"date,omitempty"`
	DateTime Timestamp            `json:"dateTime"`
	Rating   []int                `json:"rating"`
	Notes    string               `json:"notes"`
	Tags     []TagRef             `json:"tags"`
	Metrics  map[string][]float64 `json:"metrics,omitempty"`
}

func New(at time.Time, rating []int, notes string, tagIDs ...string) *Entry {
	tags := make([]TagRef, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, TagRef{TagID: id})
	}
	return &Entry{
		ID:       uuid.NewString(),
		Date:     at.Local().Format(layoutISO),
		DateTime: Timestamp{Time: at},
		Rating:   rating,
		Notes:    notes,
		Tags:     tags,
	}
}

// Day returns the calendar-day grouping key for the entry.
func (e *Entry) Day() string {
	if !e.DateTime.IsZero() {
		return e.DateTime.Local().Format(layoutISO)
	}
	return e.Date
}

func (e *Entry) HasTag(tagID string) bool {
	for _, t := range e.Tags {
		if t.TagID == tagID {
			return true
		}
	}
	return false
}

// WithoutTags returns a copy of the entry with the given tag references
// removed. All other fields are shared with the receiver.
func (e *Entry) WithoutTags(tagIDs map[string]bool) Entry {
	out := *e
	kept := make([]TagRef, 0, len(e.Tags))
	for _, t := range e.Tags {
		if !tagIDs[t.TagID] {
			kept = append(kept, t)
		}
	}
	out.Tags = kept
	return out
}

// ValidRating reports whether v is on the mood scale.
func ValidRating(v int) bool {
	return v >= 1 && v <= NumberOfRatings
}
