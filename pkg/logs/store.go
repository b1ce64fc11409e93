package logs

import (
	"context"
	"sync"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/feedback"
	"tableflip.dev/moodlog/pkg/migrate"
	"tableflip.dev/moodlog/pkg/store"
)

// Key is the persistence key for the entries document.
const Key = "MOODLOG_ENTRIES"

// Store owns the canonical entry list for the session. In-memory state is the
// source of truth; every change after the initial load is persisted
// asynchronously and failures only surface in the logs.
type Store struct {
	mu    sync.Mutex
	wg    sync.WaitGroup
	kv    store.KV
	sink  feedback.Sink
	state State

	writeMu sync.Mutex
	gen     uint64 // guarded by mu
	written uint64 // guarded by writeMu
}

func NewStore(kv store.KV, sink feedback.Sink) *Store {
	if sink == nil {
		sink = feedback.NewLogSink("logs")
	}
	return &Store{kv: kv, sink: sink}
}

// Mount loads the persisted document through the migration engine. Nothing
// stored initializes an empty loaded state; a load failure reports a
// structured diagnostic and does the same (no retry, no crash).
func (s *Store) Mount(ctx context.Context) {
	var raw map[string]interface{}
	found, err := s.kv.Load(Key, &raw)
	if err != nil {
		s.sink.Report(feedback.Issue{
			Title:       "Error loading logs",
			Description: err.Error(),
			Source:      Key,
		})
	}

	items := []entry.Entry{}
	if found {
		items = migrate.Logs(raw)
	}

	s.mu.Lock()
	s.state = State{Loaded: true, Items: items}
	s.mu.Unlock()
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Loaded
}

// Items returns a snapshot of the entry list.
func (s *Store) Items() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entry.Entry(nil), s.state.Items...)
}

func (s *Store) EntryByID(id string) (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.Items {
		if item.ID == id {
			return item, true
		}
	}
	return entry.Entry{}, false
}

// Import replaces the entire state with the migrated payload and marks the
// store loaded. The payload may be in any historical shape.
func (s *Store) Import(raw interface{}) {
	s.dispatch(importAction{items: migrate.Logs(raw)})
}

// ImportItems replaces the state with already-migrated entries.
func (s *Store) ImportItems(items []entry.Entry) {
	s.dispatch(importAction{items: items})
}

func (s *Store) Add(item entry.Entry) {
	s.dispatch(addAction{item: item})
}

// Edit merges the patch into the entry matching its id; unknown ids no-op.
func (s *Store) Edit(patch Patch) {
	s.dispatch(editAction{patch: patch})
}

// BatchReplace adopts the full item list verbatim. Callers own invariants;
// the cascade paths in the tag store are the intended users.
func (s *Store) BatchReplace(items []entry.Entry) {
	s.dispatch(batchReplaceAction{items: items})
}

func (s *Store) Delete(id string) {
	s.dispatch(deleteAction{id: id})
}

// Reset clears the journal to empty, loaded.
func (s *Store) Reset() {
	s.dispatch(resetAction{})
}

func (s *Store) dispatch(a action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	if s.state.Loaded {
		s.persist(s.state)
	}
	s.mu.Unlock()
}

// persist hands the snapshot to a detached writer. Callers hold the state
// lock; the write itself happens off it. Writers are sequenced by generation
// so a stale snapshot can never land over a newer one.
func (s *Store) persist(snapshot State) {
	s.gen++
	gen := s.gen
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		if gen <= s.written {
			return
		}
		s.written = gen
		s.kv.Store(Key, &snapshot)
	}()
}

// Flush blocks until in-flight writes have been handed to the adapter. Needed
// by short-lived processes that would otherwise exit mid-write.
func (s *Store) Flush() {
	s.wg.Wait()
}
