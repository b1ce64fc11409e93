package logs

import (
	"context"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/feedback"
	"tableflip.dev/moodlog/pkg/store"
)

func mounted(t *testing.T) (*Store, store.KV) {
	t.Helper()
	kv := store.NewMemory()
	s := NewStore(kv, feedback.Discard())
	s.Mount(context.Background())
	return s, kv
}

func fixture(rating int, notes string) entry.Entry {
	return *entry.New(time.Date(2022, 1, 10, 9, 0, 0, 0, time.Local), []int{rating}, notes)
}

func TestMountEmpty(t *testing.T) {
	s, _ := mounted(t)
	if !s.Loaded() {
		t.Fatal("store not loaded after mount")
	}
	if got := s.Items(); len(got) != 0 {
		t.Fatalf("fresh store has %d items", len(got))
	}
}

func TestMountMigratesLegacyDocument(t *testing.T) {
	kv := store.NewMemory()
	kv.Store(Key, map[string]interface{}{
		"abc": map[string]interface{}{
			"id":     "abc",
			"date":   "2021-03-01",
			"rating": "good",
			"notes":  "legacy",
		},
	})

	s := NewStore(kv, feedback.Discard())
	s.Mount(context.Background())

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].ID != "abc" || items[0].Notes != "legacy" {
		t.Errorf("item = %+v", items[0])
	}
	if !reflect.DeepEqual(items[0].Rating, []int{5}) {
		t.Errorf("rating = %v, want [5]", items[0].Rating)
	}
}

func TestAddEditDelete(t *testing.T) {
	s, _ := mounted(t)

	e := fixture(6, "first")
	s.Add(e)

	if got := s.Items(); len(got) != 1 || got[0].Notes != "first" {
		t.Fatalf("after add: %+v", got)
	}

	notes := "edited"
	s.Edit(Patch{ID: e.ID, Notes: &notes, Rating: []int{2}})

	got, ok := s.EntryByID(e.ID)
	if !ok {
		t.Fatal("entry lost after edit")
	}
	if got.Notes != "edited" || !reflect.DeepEqual(got.Rating, []int{2}) {
		t.Errorf("after edit: %+v", got)
	}

	s.Delete(e.ID)
	if got := s.Items(); len(got) != 0 {
		t.Fatalf("after delete: %+v", got)
	}
}

func TestEditUnknownIDIsNoOp(t *testing.T) {
	s, _ := mounted(t)
	e := fixture(4, "keep")
	s.Add(e)

	notes := "never applied"
	s.Edit(Patch{ID: "no-such-id", Notes: &notes})

	got, _ := s.EntryByID(e.ID)
	if got.Notes != "keep" {
		t.Errorf("unexpected mutation: %+v", got)
	}
}

func TestEditDateTimeRefreshesDate(t *testing.T) {
	s, _ := mounted(t)
	e := fixture(4, "")
	s.Add(e)

	at := time.Date(2022, 2, 1, 8, 0, 0, 0, time.Local)
	s.Edit(Patch{ID: e.ID, DateTime: &entry.Timestamp{Time: at}})

	got, _ := s.EntryByID(e.ID)
	if got.Date != "2022-02-01" {
		t.Errorf("Date = %q, want 2022-02-01", got.Date)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	s, kv := mounted(t)
	s.Add(fixture(5, "persisted"))
	s.Flush()

	reloaded := NewStore(kv, feedback.Discard())
	reloaded.Mount(context.Background())

	items := reloaded.Items()
	if len(items) != 1 || items[0].Notes != "persisted" {
		t.Fatalf("reloaded items = %+v", items)
	}
}

func TestResetClears(t *testing.T) {
	s, kv := mounted(t)
	s.Add(fixture(5, ""))
	s.Reset()
	s.Flush()

	if got := s.Items(); len(got) != 0 {
		t.Fatalf("after reset: %+v", got)
	}

	reloaded := NewStore(kv, feedback.Discard())
	reloaded.Mount(context.Background())
	if got := reloaded.Items(); len(got) != 0 {
		t.Fatalf("reset not persisted: %+v", got)
	}
}

// stallKV holds every write until released so the test controls when the
// detached writers run.
type stallKV struct {
	store.KV
	release chan struct{}
}

func (k *stallKV) Store(key string, v interface{}) {
	<-k.release
	k.KV.Store(key, v)
}

func TestStaleWriteCannotClobberReset(t *testing.T) {
	inner := store.NewMemory()
	kv := &stallKV{KV: inner, release: make(chan struct{})}

	s := NewStore(kv, feedback.Discard())
	s.Mount(context.Background())

	// Both writers are in flight before either lands; whichever runs first,
	// the reset must win durably.
	s.Add(fixture(5, "stale"))
	s.Reset()
	close(kv.release)
	s.Flush()

	reloaded := NewStore(inner, feedback.Discard())
	reloaded.Mount(context.Background())
	if got := reloaded.Items(); len(got) != 0 {
		t.Fatalf("reset not persisted: %+v", got)
	}
}

func TestBatchReplaceAdoptsSliceVerbatim(t *testing.T) {
	s, _ := mounted(t)
	s.Add(fixture(3, "a"))
	s.Add(fixture(4, "b"))

	next := []entry.Entry{fixture(7, "only")}
	s.BatchReplace(next)

	got := s.Items()
	if len(got) != 1 || got[0].Notes != "only" {
		t.Fatalf("after batch replace: %+v", got)
	}
}
