package settings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/moodlog/pkg/feedback"
	"tableflip.dev/moodlog/pkg/store"
)

// Key is the persistence key for the settings document.
const Key = "MOODLOG_SETTINGS"

// Store owns the settings record. All writes go through Set, which enforces
// the palette exclusivity invariant and persists the record best-effort.
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
		sink = feedback.NewLogSink("settings")
	}
	return &Store{
		kv:    kv,
		sink:  sink,
		state: Default(),
	}
}

// Mount loads the persisted record. With nothing persisted it generates a new
// stable device id and writes the defaults; on a load failure it reports a
// diagnostic and continues with defaults (treating the failure as no data).
func (s *Store) Mount(ctx context.Context) {
	loaded := Default()
	found, err := s.kv.Load(Key, &loaded)
	if err != nil {
		s.sink.Report(feedback.Issue{
			Title:       "Error loading settings",
			Description: err.Error(),
			Source:      Key,
		})
		found = false
		loaded = Default()
	}

	s.mu.Lock()
	if found {
		if loaded.DeviceID == "" {
			loaded.DeviceID = uuid.NewString()
		}
		loaded.Loaded = true
		s.state = normalize(s.state, loaded)
	} else {
		loaded = Default()
		loaded.DeviceID = uuid.NewString()
		loaded.Loaded = true
		s.state = loaded
	}
	s.persist(s.state)
	s.mu.Unlock()
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Loaded
}

// State returns a snapshot of the current record.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set applies mutate to the current record. It is the single write boundary:
// palette exclusivity is re-established here no matter which path wrote, and
// the result is persisted fire-and-forget.
func (s *Store) Set(mutate func(State) State) {
	s.mu.Lock()
	prev := s.state
	next := mutate(prev)
	next.Loaded = prev.Loaded
	next.DeviceID = prev.DeviceID
	s.state = normalize(prev, next)
	if s.state.Loaded {
		s.persist(s.state)
	}
	s.mu.Unlock()
}

// normalize enforces that palettePresetId and customPalette are never both
// set. Whichever side changed in this write wins; when both changed the
// custom palette wins, matching the palette screen behavior.
func normalize(prev, next State) State {
	if len(next.CustomPalette) > 0 && next.PalettePresetID != "" {
		customChanged := !equalStrings(prev.CustomPalette, next.CustomPalette)
		presetChanged := prev.PalettePresetID != next.PalettePresetID
		if customChanged || !presetChanged {
			next.PalettePresetID = ""
		} else {
			next.CustomPalette = nil
		}
	}
	return next
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SetPalettePreset selects a built-in palette and clears any custom palette.
func (s *Store) SetPalettePreset(id string) error {
	if _, ok := PresetByID(id); !ok {
		return fmt.Errorf("settings: unknown palette preset %q", id)
	}
	s.Set(func(st State) State {
		st.PalettePresetID = id
		st.CustomPalette = nil
		return st
	})
	return nil
}

// SetCustomPalette selects a custom color scale and clears the preset.
func (s *Store) SetCustomPalette(colors []string) {
	s.Set(func(st State) State {
		st.CustomPalette = append([]string(nil), colors...)
		st.PalettePresetID = ""
		return st
	})
}

func (s *Store) SetTheme(theme Theme) {
	s.Set(func(st State) State {
		st.Theme = theme
		return st
	})
}

func (s *Store) SetReminder(enabled bool, at string) {
	s.Set(func(st State) State {
		st.ReminderEnabled = enabled
		if at != "" {
			st.ReminderTime = at
		}
		return st
	})
}

func (s *Store) HasStep(step Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.hasStep(step)
}

// ToggleStep flips the step, or forces it when explicit is non-nil. An
// unrecognized step is a caller bug and panics.
func (s *Store) ToggleStep(step Step, explicit *bool) {
	if _, err := ParseStep(string(step)); err != nil {
		panic(err)
	}
	s.Set(func(st State) State {
		enable := !st.hasStep(step)
		if explicit != nil {
			enable = *explicit
		}
		if enable {
			if !st.hasStep(step) {
				st.Steps = append(append([]Step(nil), st.Steps...), step)
			}
			return st
		}
		kept := make([]Step, 0, len(st.Steps))
		for _, candidate := range st.Steps {
			if candidate != step {
				kept = append(kept, candidate)
			}
		}
		st.Steps = kept
		return st
	})
}

func (s *Store) HasActionDone(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.hasActionDone(title)
}

// AddActionDone records a one-time action. The ledger is a set keyed by
// title: recording an already-present title is a no-op.
func (s *Store) AddActionDone(title string) {
	s.Set(func(st State) State {
		if st.hasActionDone(title) {
			return st
		}
		st.ActionsDone = append(append([]Action(nil), st.ActionsDone...), newAction(title, time.Now()))
		return st
	})
}

func (s *Store) RemoveActionDone(title string) {
	s.Set(func(st State) State {
		kept := make([]Action, 0, len(st.ActionsDone))
		for _, a := range st.ActionsDone {
			if a.Title != title {
				kept = append(kept, a)
			}
		}
		st.ActionsDone = kept
		return st
	})
}

// Reset restores defaults and generates a fresh device id (factory reset).
func (s *Store) Reset() {
	s.mu.Lock()
	next := Default()
	next.DeviceID = uuid.NewString()
	next.Loaded = true
	s.state = next
	s.persist(s.state)
	s.mu.Unlock()
}

// Import merges an exported settings document over the defaults and marks the
// store loaded. The device identity is preserved.
func (s *Store) Import(exp Export) {
	s.mu.Lock()
	prev := s.state
	next := Default()
	next.DeviceID = prev.DeviceID
	if next.DeviceID == "" {
		next.DeviceID = uuid.NewString()
	}
	next.Loaded = true
	applyExport(&next, exp)
	s.state = normalize(prev, next)
	s.persist(s.state)
	s.mu.Unlock()
}

func applyExport(st *State, exp Export) {
	if exp.PalettePresetID != "" {
		st.PalettePresetID = exp.PalettePresetID
	}
	if exp.CustomPalette != nil {
		st.CustomPalette = exp.CustomPalette
	}
	if exp.Theme != "" {
		st.Theme = exp.Theme
	}
	st.ReminderEnabled = exp.ReminderEnabled
	if exp.ReminderTime != "" {
		st.ReminderTime = exp.ReminderTime
	}
	if exp.ActionsDone != nil {
		st.ActionsDone = exp.ActionsDone
	}
	if exp.Steps != nil {
		st.Steps = exp.Steps
	}
}

// persist writes the record asynchronously. Failures are logged by the
// adapter and never roll back in-memory state. Callers hold the state lock;
// the write itself happens off it, sequenced by generation so a stale
// snapshot can never land over a newer one.
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
