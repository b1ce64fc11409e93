// Package migrate normalizes persisted or imported documents from any
// historical schema into the current one. Every function here is total and
// idempotent: malformed input degrades to defaults, user content is never
// dropped, and running a migration twice yields the same result.
package migrate

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/moodlog/pkg/entry"
)

const layoutISO = "2006-01-02"

// legacyRatings maps the pre-array named ratings onto the 1..7 scale.
var legacyRatings = map[string]int{
	"extremely_bad":  1,
	"very_bad":       2,
	"bad":            3,
	"neutral":        4,
	"good":           5,
	"very_good":      6,
	"extremely_good": 7,
}

// legacySleepQuality maps the deprecated sleep block onto a 1..5 metric.
var legacySleepQuality = map[string]float64{
	"very_bad":  1,
	"bad":       2,
	"neutral":   3,
	"good":      4,
	"very_good": 5,
}

// Logs normalizes a whole persisted log document: either the current
// {items: [...]} shape, a bare item list, or the oldest keyed-map form.
func Logs(raw interface{}) []entry.Entry {
	switch doc := raw.(type) {
	case map[string]interface{}:
		if items, ok := doc["items"]; ok {
			return Entries(items)
		}
		return Entries(doc)
	default:
		return Entries(raw)
	}
}

// Entries normalizes the items collection from any historical shape. A keyed
// map becomes a list of its values; order is not preserved across that
// conversion and no consumer may assume one.
func Entries(items interface{}) []entry.Entry {
	var raw []interface{}
	switch v := items.(type) {
	case nil:
		return []entry.Entry{}
	case []interface{}:
		raw = v
	case map[string]interface{}:
		raw = make([]interface{}, 0, len(v))
		for _, item := range v {
			raw = append(raw, item)
		}
	default:
		return []entry.Entry{}
	}

	out := make([]entry.Entry, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, normalizeEntry(m))
	}
	return out
}

func normalizeEntry(m map[string]interface{}) entry.Entry {
	e := entry.Entry{}

	if id, ok := m["id"].(string); ok && id != "" {
		e.ID = id
	} else {
		e.ID = uuid.NewString()
	}

	e.DateTime = normalizeDateTime(m)
	if date, ok := m["date"].(string); ok && date != "" {
		e.Date = date
	} else {
		e.Date = e.DateTime.Local().Format(layoutISO)
	}

	e.Notes, _ = m["notes"].(string)
	e.Rating = normalizeRating(m["rating"])
	e.Tags = normalizeTags(m["tags"])
	e.Metrics = normalizeMetrics(m)

	return e
}

// normalizeDateTime derives the authoritative instant from whichever legacy
// field is present, defaulting to now as a last resort.
func normalizeDateTime(m map[string]interface{}) entry.Timestamp {
	if raw, ok := m["dateTime"].(string); ok && raw != "" {
		if t, err := entry.ParseTime(raw); err == nil {
			return entry.Timestamp{Time: t}
		}
	}
	if raw, ok := m["date"].(string); ok && raw != "" {
		if t, err := time.ParseInLocation(layoutISO, raw, time.Local); err == nil {
			return entry.Timestamp{Time: t}
		}
	}
	if raw, ok := m["createdAt"].(string); ok && raw != "" {
		if t, err := entry.ParseTime(raw); err == nil {
			return entry.Timestamp{Time: t}
		}
	}
	return entry.Timestamp{Time: time.Now()}
}

// normalizeRating accepts the current int array, a bare number, or a legacy
// named rating. Anything unrecoverable becomes the single neutral value so
// the non-empty rating invariant always holds.
func normalizeRating(raw interface{}) []int {
	switch v := raw.(type) {
	case []interface{}:
		out := make([]int, 0, len(v))
		for _, item := range v {
			if n, ok := item.(float64); ok {
				out = append(out, int(n))
			}
		}
		if len(out) > 0 {
			return out
		}
	case float64:
		return []int{int(v)}
	case string:
		if n, ok := legacyRatings[v]; ok {
			return []int{n}
		}
	}
	return []int{entry.NeutralRating}
}

// normalizeTags accepts the current {tagId} shape, the legacy {id} shape, or
// bare string ids, always emitting tagId.
func normalizeTags(raw interface{}) []entry.TagRef {
	list, ok := raw.([]interface{})
	if !ok {
		return []entry.TagRef{}
	}
	out := make([]entry.TagRef, 0, len(list))
	for _, item := range list {
		switch t := item.(type) {
		case map[string]interface{}:
			if id, ok := t["tagId"].(string); ok && id != "" {
				out = append(out, entry.TagRef{TagID: id})
			} else if id, ok := t["id"].(string); ok && id != "" {
				out = append(out, entry.TagRef{TagID: id})
			}
		case string:
			if t != "" {
				out = append(out, entry.TagRef{TagID: t})
			}
		}
	}
	return out
}

// normalizeMetrics collects the open metric map and folds the deprecated
// sleep block into a "sleep" metric when present.
func normalizeMetrics(m map[string]interface{}) map[string][]float64 {
	out := map[string][]float64{}

	if metrics, ok := m["metrics"].(map[string]interface{}); ok {
		for key, raw := range metrics {
			values, ok := raw.([]interface{})
			if !ok {
				continue
			}
			samples := make([]float64, 0, len(values))
			for _, v := range values {
				if n, ok := v.(float64); ok {
					samples = append(samples, n)
				}
			}
			if len(samples) > 0 {
				out[key] = samples
			}
		}
	}

	if _, ok := out["sleep"]; !ok {
		if sleep, ok := m["sleep"].(map[string]interface{}); ok {
			if quality, ok := sleep["quality"].(string); ok {
				if n, ok := legacySleepQuality[quality]; ok {
					out["sleep"] = []float64{n}
				}
			}
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
