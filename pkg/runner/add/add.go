package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/stats"
	"tableflip.dev/moodlog/pkg/tags"
)

type Add struct {
	When    time.Time
	Rating  []int
	Notes   string
	TagIDs  []string
	Sleep   float64
	ShowID  bool
	Logs    *logs.Store
	Catalog *tags.Store
}

const (
	layoutISO = "2006-01-02"
	layoutUS  = "January 2, 2006"
)

func (n *Add) Do(ctx context.Context) error {
	if n.Logs == nil {
		return errors.New("can not add, no store")
	}
	if len(n.Rating) == 0 {
		return errors.New("a rating is required")
	}
	for _, r := range n.Rating {
		if !entry.ValidRating(r) {
			return fmt.Errorf("rating %d is off the 1..%d scale", r, entry.NumberOfRatings)
		}
	}

	when := n.When
	if when.IsZero() {
		when = time.Now()
	}

	tagIDs, err := n.resolveTags()
	if err != nil {
		return err
	}

	e := entry.New(when, n.Rating, n.Notes, tagIDs...)
	if n.Sleep > 0 {
		e.Metrics = map[string][]float64{"sleep": {n.Sleep}}
	}
	n.Logs.Add(*e)

	pp := printers.PrettyPrint{ShowID: n.ShowID, TagTitle: tagTitle(n.Catalog)}
	pp.NewLine()
	pp.Title(when.Local().Format(layoutUS))

	day := when.Local().Format(layoutISO)
	todays := make([]entry.Entry, 0)
	for _, item := range n.Logs.Items() {
		if item.Day() == day {
			todays = append(todays, item)
		}
	}
	pp.Entries(todays...)

	if streak := stats.CurrentStreak(n.Logs.Items(), time.Now()); streak > 1 {
		fmt.Printf("%d day streak\n", streak)
	}

	return nil
}

// resolveTags accepts tag ids or titles and returns catalog ids. Unknown
// values are an error so a typo does not silently create a dangling ref.
func (n *Add) resolveTags() ([]string, error) {
	if len(n.TagIDs) == 0 || n.Catalog == nil {
		return n.TagIDs, nil
	}

	st := n.Catalog.State()
	out := make([]string, 0, len(n.TagIDs))
	for _, raw := range n.TagIDs {
		id := ""
		for _, t := range st.Tags {
			if t.ID == raw || t.Title == raw {
				id = t.ID
				break
			}
		}
		if id == "" {
			return nil, fmt.Errorf("unknown tag %q", raw)
		}
		out = append(out, id)
	}
	return out, nil
}

func tagTitle(catalog *tags.Store) func(id string) string {
	if catalog == nil {
		return nil
	}
	return func(id string) string {
		if t, ok := catalog.TagByID(id); ok {
			return t.Title
		}
		return ""
	}
}
