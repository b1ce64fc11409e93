package stats

import (
	"sort"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/tags"
)

// TagCount is one row of the tag usage distribution. Missing marks a tag id
// still referenced by entries but absent from the catalog; consumers display
// it as an unknown tag rather than erroring.
type TagCount struct {
	TagID   string
	Title   string
	Count   int
	Missing bool
}

// TagsDistribution counts how often each tag is used across the entries,
// joined against the catalog for display names and sorted by frequency
// descending (ties by title). Category membership is ignored.
func TagsDistribution(items []entry.Entry, catalog []tags.Tag) []TagCount {
	counts := map[string]int{}
	for _, item := range items {
		for _, ref := range item.Tags {
			counts[ref.TagID]++
		}
	}

	titles := make(map[string]string, len(catalog))
	for _, t := range catalog {
		titles[t.ID] = t.Title
	}

	out := make([]TagCount, 0, len(counts))
	for id, count := range counts {
		title, ok := titles[id]
		out = append(out, TagCount{
			TagID:   id,
			Title:   title,
			Count:   count,
			Missing: !ok,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Title < out[j].Title
	})
	return out
}
