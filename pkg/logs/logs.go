// Package logs owns the canonical journal entry list. State changes flow
// through a reducer; persistence is a best-effort write-behind of the whole
// document.
package logs

import (
	"tableflip.dev/moodlog/pkg/entry"
)

// State is the entry store's slice. Loaded is transient and never persisted.
type State struct {
	Loaded bool          `json:"-"`
	Items  []entry.Entry `json:"items"`
}

// Patch is a partial entry update merged by id. Nil fields stay untouched.
type Patch struct {
	ID       string
	DateTime *entry.Timestamp
	Date     *string
	Rating   []int
	Notes    *string
	Tags     []entry.TagRef
	Metrics  map[string][]float64
}

type action interface {
	isAction()
}

type importAction struct{ items []entry.Entry }
type addAction struct{ item entry.Entry }
type editAction struct{ patch Patch }
type batchReplaceAction struct{ items []entry.Entry }
type deleteAction struct{ id string }
type resetAction struct{}

func (importAction) isAction()       {}
func (addAction) isAction()          {}
func (editAction) isAction()         {}
func (batchReplaceAction) isAction() {}
func (deleteAction) isAction()       {}
func (resetAction) isAction()        {}

// reduce returns the next state. Every branch builds a new state; the batch
// replace is the documented fast path that adopts the given slice verbatim,
// leaving invariants to the caller (cascades and bulk migrations).
func reduce(state State, a action) State {
	switch act := a.(type) {
	case importAction:
		return State{Loaded: true, Items: act.items}
	case addAction:
		items := make([]entry.Entry, 0, len(state.Items)+1)
		items = append(items, state.Items...)
		items = append(items, act.item)
		return State{Loaded: state.Loaded, Items: items}
	case editAction:
		items := make([]entry.Entry, len(state.Items))
		for i, item := range state.Items {
			if item.ID == act.patch.ID {
				items[i] = applyPatch(item, act.patch)
			} else {
				items[i] = item
			}
		}
		return State{Loaded: state.Loaded, Items: items}
	case batchReplaceAction:
		state.Items = act.items
		return state
	case deleteAction:
		items := make([]entry.Entry, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != act.id {
				items = append(items, item)
			}
		}
		return State{Loaded: state.Loaded, Items: items}
	case resetAction:
		return State{Loaded: true, Items: []entry.Entry{}}
	}
	return state
}

func applyPatch(item entry.Entry, p Patch) entry.Entry {
	if p.DateTime != nil {
		item.DateTime = *p.DateTime
		item.Date = p.DateTime.Local().Format("2006-01-02")
	}
	if p.Date != nil {
		item.Date = *p.Date
	}
	if p.Rating != nil {
		item.Rating = p.Rating
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	if p.Tags != nil {
		item.Tags = p.Tags
	}
	if p.Metrics != nil {
		item.Metrics = p.Metrics
	}
	return item
}
