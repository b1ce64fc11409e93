package tags

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/feedback"
	"tableflip.dev/moodlog/pkg/settings"
	"tableflip.dev/moodlog/pkg/store"
)

// Key is the persistence key for the tag/category document.
const Key = "MOODLOG_TAGS"

// ErrSettingsNotLoaded is returned by Mount when the settings store has not
// finished loading. First-launch seeding depends on settings being available,
// so this store defers its own load (an ordering dependency, not a data one).
var ErrSettingsNotLoaded = errors.New("tags: settings store not loaded")

// EntryRepository is the collaborator the store cascades through when a tag
// is deleted. The entry store implements it; this store never owns entries.
type EntryRepository interface {
	Items() []entry.Entry
	BatchReplace(items []entry.Entry)
}

// CategoryUpdate carries the mutable category fields; nil leaves a field as is.
type CategoryUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// TagUpdate carries the mutable tag fields; nil leaves a field as is.
type TagUpdate struct {
	Title      *string
	Color      *string
	IsArchived *bool
}

// Store owns the category and tag catalog.
type Store struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	kv       store.KV
	sink     feedback.Sink
	settings *settings.Store
	entries  EntryRepository
	state    State

	writeMu sync.Mutex
	gen     uint64 // guarded by mu
	written uint64 // guarded by writeMu
}

func NewStore(kv store.KV, sink feedback.Sink, sett *settings.Store, entries EntryRepository) *Store {
	if sink == nil {
		sink = feedback.NewLogSink("tags")
	}
	return &Store{
		kv:       kv,
		sink:     sink,
		settings: sett,
		entries:  entries,
		state:    State{Version: CurrentVersion},
	}
}

// Mount loads the persisted catalog. With no persisted document it seeds the
// default categories; an existing document is used verbatim, never overwritten
// with defaults. Mount refuses to run before the settings store is loaded.
func (s *Store) Mount(ctx context.Context) error {
	if s.settings != nil && !s.settings.Loaded() {
		return ErrSettingsNotLoaded
	}

	loaded := State{}
	found, err := s.kv.Load(Key, &loaded)
	if err != nil {
		s.sink.Report(feedback.Issue{
			Title:       "Error loading tags",
			Description: err.Error(),
			Source:      Key,
		})
		found = false
	}

	s.mu.Lock()
	if found {
		if loaded.Version == 0 {
			loaded.Version = CurrentVersion
		}
		loaded.Loaded = true
		s.state = loaded
	} else {
		seeded := DefaultState(time.Now())
		seeded.Loaded = true
		s.state = seeded
		s.persist(s.state)
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Loaded
}

// State returns a snapshot of the catalog.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Categories = append([]Category(nil), s.state.Categories...)
	out.Tags = append([]Tag(nil), s.state.Tags...)
	return out
}

func (s *Store) CategoryByID(id string) (Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (s *Store) TagByID(id string) (Tag, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.state.Tags {
		if t.ID == id {
			return t, true
		}
	}
	return Tag{}, false
}

// TagsByCategory lists the selectable (non-archived) tags of a category.
func (s *Store) TagsByCategory(categoryID string) []Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Tag, 0)
	for _, t := range s.state.Tags {
		if t.CategoryID == categoryID && !t.IsArchived {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) CreateCategory(name, color, icon string) (Category, error) {
	name, err := validateName(name)
	if err != nil {
		return Category{}, err
	}
	if color == "" {
		color = ColorNames[0]
	}
	if !ValidColor(color) {
		return Category{}, fmt.Errorf("tags: unknown color %q", color)
	}

	c := newCategory(name, color, icon, false, time.Now())

	s.mu.Lock()
	s.state.Categories = append(s.state.Categories, c)
	s.persist(s.state)
	s.mu.Unlock()
	return c, nil
}

// UpdateCategory merges the update into the category. Unknown ids are a
// silent no-op.
func (s *Store) UpdateCategory(id string, upd CategoryUpdate) error {
	if upd.Name != nil {
		name, err := validateName(*upd.Name)
		if err != nil {
			return err
		}
		upd.Name = &name
	}
	if upd.Color != nil && !ValidColor(*upd.Color) {
		return fmt.Errorf("tags: unknown color %q", *upd.Color)
	}

	s.mu.Lock()
	for i, c := range s.state.Categories {
		if c.ID != id {
			continue
		}
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Color != nil {
			c.Color = *upd.Color
		}
		if upd.Icon != nil {
			c.Icon = *upd.Icon
		}
		c.UpdatedAt = entry.Timestamp{Time: time.Now()}
		// Copy before the element write; snapshots already handed to in-flight
		// writers share the backing array.
		next := append([]Category(nil), s.state.Categories...)
		next[i] = c
		s.state.Categories = next
		s.persist(s.state)
		break
	}
	s.mu.Unlock()
	return nil
}

// DeleteCategory removes a non-default category, its tags, and every entry
// reference to those tags. Default categories and unknown ids are a no-op.
func (s *Store) DeleteCategory(id string) {
	s.mu.Lock()
	var target *Category
	for i := range s.state.Categories {
		if s.state.Categories[i].ID == id {
			target = &s.state.Categories[i]
			break
		}
	}
	if target == nil || target.IsDefault {
		s.mu.Unlock()
		return
	}

	removed := make(map[string]bool)
	keptTags := make([]Tag, 0, len(s.state.Tags))
	for _, t := range s.state.Tags {
		if t.CategoryID == id {
			removed[t.ID] = true
			continue
		}
		keptTags = append(keptTags, t)
	}

	keptCategories := make([]Category, 0, len(s.state.Categories))
	for _, c := range s.state.Categories {
		if c.ID != id {
			keptCategories = append(keptCategories, c)
		}
	}

	s.state.Categories = keptCategories
	s.state.Tags = keptTags
	s.persist(s.state)
	s.mu.Unlock()

	s.cascade(removed)
}

func (s *Store) CreateTag(categoryID, title, color string) (Tag, error) {
	title, err := validateName(title)
	if err != nil {
		return Tag{}, err
	}
	if color == "" {
		color = ColorNames[0]
	}
	if !ValidColor(color) {
		return Tag{}, fmt.Errorf("tags: unknown color %q", color)
	}
	if _, ok := s.CategoryByID(categoryID); !ok {
		return Tag{}, fmt.Errorf("tags: unknown category %q", categoryID)
	}

	t := newTag(categoryID, title, color, time.Now())

	s.mu.Lock()
	s.state.Tags = append(s.state.Tags, t)
	s.persist(s.state)
	s.mu.Unlock()
	return t, nil
}

// UpdateTag merges the update into the tag. Unknown ids are a silent no-op.
func (s *Store) UpdateTag(id string, upd TagUpdate) error {
	if upd.Title != nil {
		title, err := validateName(*upd.Title)
		if err != nil {
			return err
		}
		upd.Title = &title
	}
	if upd.Color != nil && !ValidColor(*upd.Color) {
		return fmt.Errorf("tags: unknown color %q", *upd.Color)
	}

	s.mu.Lock()
	for i, t := range s.state.Tags {
		if t.ID != id {
			continue
		}
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Color != nil {
			t.Color = *upd.Color
		}
		if upd.IsArchived != nil {
			t.IsArchived = *upd.IsArchived
		}
		t.UpdatedAt = entry.Timestamp{Time: time.Now()}
		// Copy before the element write; snapshots already handed to in-flight
		// writers share the backing array.
		next := append([]Tag(nil), s.state.Tags...)
		next[i] = t
		s.state.Tags = next
		s.persist(s.state)
		break
	}
	s.mu.Unlock()
	return nil
}

// ArchiveTag soft-deletes: the tag disappears from selection but stays on
// historical entries.
func (s *Store) ArchiveTag(id string) error {
	archived := true
	return s.UpdateTag(id, TagUpdate{IsArchived: &archived})
}

// DeleteTag hard-deletes the tag and strips its references from every entry.
func (s *Store) DeleteTag(id string) {
	s.mu.Lock()
	kept := make([]Tag, 0, len(s.state.Tags))
	found := false
	for _, t := range s.state.Tags {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.state.Tags = kept
	s.persist(s.state)
	s.mu.Unlock()

	s.cascade(map[string]bool{id: true})
}

// Import replaces the catalog with an imported document.
func (s *Store) Import(st State) {
	s.mu.Lock()
	st.Loaded = true
	if st.Version == 0 {
		st.Version = CurrentVersion
	}
	s.state = st
	s.persist(s.state)
	s.mu.Unlock()
}

// Reset clears the catalog to empty, loaded.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = State{Loaded: true, Categories: []Category{}, Tags: []Tag{}, Version: CurrentVersion}
	s.persist(s.state)
	s.mu.Unlock()
}

// cascade strips the removed tag references from every entry that carries
// one. Untouched entries are passed through unchanged.
func (s *Store) cascade(removed map[string]bool) {
	if s.entries == nil || len(removed) == 0 {
		return
	}
	items := s.entries.Items()
	changed := false
	next := make([]entry.Entry, 0, len(items))
	for i := range items {
		e := items[i]
		touched := false
		for _, ref := range e.Tags {
			if removed[ref.TagID] {
				touched = true
				break
			}
		}
		if touched {
			e = e.WithoutTags(removed)
			changed = true
		}
		next = append(next, e)
	}
	if changed {
		s.entries.BatchReplace(next)
	}
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

// Flush blocks until in-flight writes have been handed to the adapter.
func (s *Store) Flush() {
	s.wg.Wait()
}
