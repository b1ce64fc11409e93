package edit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/logs"
	"tableflip.dev/moodlog/pkg/printers"
)

type Edit struct {
	ID     string
	Rating []int
	Notes  *string
	When   *time.Time
	ShowID bool
	Logs   *logs.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Logs == nil {
		return errors.New("can not edit, no store")
	}
	if n.ID == "" {
		return errors.New("an entry id is required")
	}
	if _, ok := n.Logs.EntryByID(n.ID); !ok {
		return fmt.Errorf("no entry with id %q", n.ID)
	}
	for _, r := range n.Rating {
		if !entry.ValidRating(r) {
			return fmt.Errorf("rating %d is off the 1..%d scale", r, entry.NumberOfRatings)
		}
	}

	patch := logs.Patch{ID: n.ID, Rating: n.Rating, Notes: n.Notes}
	if n.When != nil {
		patch.DateTime = &entry.Timestamp{Time: *n.When}
	}
	n.Logs.Edit(patch)

	e, _ := n.Logs.EntryByID(n.ID)
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Entries(e)

	return nil
}
