package settings

import (
	"context"
	"testing"

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

func TestMountGeneratesStableDeviceID(t *testing.T) {
	s, kv := mounted(t)

	id := s.State().DeviceID
	if id == "" {
		t.Fatal("no device id after first mount")
	}
	s.Flush()

	again := NewStore(kv, feedback.Discard())
	again.Mount(context.Background())
	if got := again.State().DeviceID; got != id {
		t.Errorf("device id changed across mounts: %q -> %q", id, got)
	}
}

func TestDefaults(t *testing.T) {
	s, _ := mounted(t)
	st := s.State()

	if st.PalettePresetID != DefaultPreset().ID {
		t.Errorf("preset = %q", st.PalettePresetID)
	}
	if st.Theme != ThemeSystem {
		t.Errorf("theme = %q", st.Theme)
	}
	if st.ReminderTime != "18:00" {
		t.Errorf("reminder time = %q", st.ReminderTime)
	}
	if len(st.Steps) != len(StepOptions()) {
		t.Errorf("steps = %v", st.Steps)
	}
}

func TestPaletteExclusivity(t *testing.T) {
	s, _ := mounted(t)

	s.SetCustomPalette([]string{"#111", "#222", "#333", "#444", "#555", "#666", "#777"})
	st := s.State()
	if st.PalettePresetID != "" {
		t.Errorf("preset %q survived a custom palette", st.PalettePresetID)
	}
	if len(st.CustomPalette) != 7 {
		t.Errorf("custom palette = %v", st.CustomPalette)
	}

	if err := s.SetPalettePreset("sunset"); err != nil {
		t.Fatal(err)
	}
	st = s.State()
	if st.PalettePresetID != "sunset" {
		t.Errorf("preset = %q", st.PalettePresetID)
	}
	if len(st.CustomPalette) != 0 {
		t.Errorf("custom palette %v survived a preset", st.CustomPalette)
	}
}

func TestPaletteExclusivityThroughSet(t *testing.T) {
	s, _ := mounted(t)

	// A raw Set that leaves both sides populated is normalized at the write
	// boundary; the changed side wins.
	s.Set(func(st State) State {
		st.CustomPalette = []string{"#111", "#222"}
		return st
	})
	st := s.State()
	if st.PalettePresetID != "" || len(st.CustomPalette) != 2 {
		t.Errorf("normalize failed: %+v", st)
	}

	s.Set(func(st State) State {
		st.PalettePresetID = "ocean"
		return st
	})
	st = s.State()
	if st.PalettePresetID != "ocean" || len(st.CustomPalette) != 0 {
		t.Errorf("normalize failed: %+v", st)
	}
}

func TestSetPalettePresetUnknown(t *testing.T) {
	s, _ := mounted(t)
	if err := s.SetPalettePreset("nope"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestActivePalette(t *testing.T) {
	s, _ := mounted(t)
	if got := s.State().ActivePalette(); len(got) != 7 {
		t.Errorf("default palette has %d colors", len(got))
	}

	custom := []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7"}
	s.SetCustomPalette(custom)
	got := s.State().ActivePalette()
	if got[0] != "#1" {
		t.Errorf("active palette = %v", got)
	}
}

func TestToggleStep(t *testing.T) {
	s, _ := mounted(t)

	if !s.HasStep(StepSleep) {
		t.Fatal("sleep step not on by default")
	}
	s.ToggleStep(StepSleep, nil)
	if s.HasStep(StepSleep) {
		t.Error("toggle did not disable the step")
	}

	force := true
	s.ToggleStep(StepSleep, &force)
	s.ToggleStep(StepSleep, &force) // idempotent when forced
	if !s.HasStep(StepSleep) {
		t.Error("forced enable failed")
	}

	st := s.State()
	seen := 0
	for _, step := range st.Steps {
		if step == StepSleep {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("step duplicated %d times", seen)
	}
}

func TestToggleStepUnknownPanics(t *testing.T) {
	s, _ := mounted(t)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown step")
		}
	}()
	s.ToggleStep(Step("bogus"), nil)
}

func TestActionsDoneIsASet(t *testing.T) {
	s, _ := mounted(t)

	s.AddActionDone("onboarding")
	s.AddActionDone("onboarding")
	if got := len(s.State().ActionsDone); got != 1 {
		t.Fatalf("ledger has %d records, want 1", got)
	}
	if !s.HasActionDone("onboarding") {
		t.Error("recorded action not found")
	}

	s.RemoveActionDone("onboarding")
	if s.HasActionDone("onboarding") {
		t.Error("removed action still present")
	}
}

func TestResetRegeneratesDeviceID(t *testing.T) {
	s, _ := mounted(t)
	id := s.State().DeviceID

	s.SetTheme(ThemeDark)
	s.Reset()

	st := s.State()
	if st.Theme != ThemeSystem {
		t.Errorf("theme after reset = %q", st.Theme)
	}
	if st.DeviceID == "" || st.DeviceID == id {
		t.Errorf("device id not regenerated: %q", st.DeviceID)
	}
}

func TestImportPreservesDeviceID(t *testing.T) {
	s, _ := mounted(t)
	id := s.State().DeviceID

	s.Import(Export{Theme: ThemeDark, ReminderEnabled: true, ReminderTime: "21:00"})

	st := s.State()
	if st.DeviceID != id {
		t.Errorf("device id changed on import: %q", st.DeviceID)
	}
	if st.Theme != ThemeDark || !st.ReminderEnabled || st.ReminderTime != "21:00" {
		t.Errorf("import not applied: %+v", st)
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

func TestStaleWriteCannotClobberLatest(t *testing.T) {
	inner := store.NewMemory()
	kv := &stallKV{KV: inner, release: make(chan struct{})}

	s := NewStore(kv, feedback.Discard())
	s.Mount(context.Background())

	s.SetTheme(ThemeDark)
	s.SetTheme(ThemeLight)
	close(kv.release)
	s.Flush()

	reloaded := NewStore(inner, feedback.Discard())
	reloaded.Mount(context.Background())
	if got := reloaded.State().Theme; got != ThemeLight {
		t.Fatalf("persisted theme = %q, want %q", got, ThemeLight)
	}
}

func TestParseStep(t *testing.T) {
	if _, err := ParseStep("RATING"); err != nil {
		t.Errorf("ParseStep is not case insensitive: %v", err)
	}
	if _, err := ParseStep("reminder"); err == nil {
		t.Error("reminder is not a selectable step")
	}
	if _, err := ParseStep("bogus"); err == nil {
		t.Error("expected an error for an unknown step")
	}
}
