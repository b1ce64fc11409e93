// Package settings owns the single user-preference record: theme, palette,
// reminder, active logging steps, device identity, and the actions-done
// ledger used to gate one-time prompts.
package settings

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

// Step identifies one stage of the logging flow.
type Step string

const (
	StepRating   Step = "rating"
	StepTags     Step = "tags"
	StepSleep    Step = "sleep"
	StepMessage  Step = "message"
	StepReminder Step = "reminder"
)

// StepOptions lists the steps a user can enable.
func StepOptions() []Step {
	return []Step{
		StepRating,
		StepTags,
		StepSleep,
		StepMessage,
	}
}

// ParseStep converts a string to a Step or returns an error for unknown values.
func ParseStep(raw string) (Step, error) {
	s := Step(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range StepOptions() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("settings: unknown step %q", raw)
}

// MustStep parses the input and panics on error. Intended for tests/config.
func MustStep(raw string) Step {
	s, err := ParseStep(raw)
	if err != nil {
		panic(err)
	}
	return s
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Action is one completed one-time action, keyed by title.
type Action struct {
	Title string          `json:"title"`
	Date  entry.Timestamp `json:"date"`
}

// State is the full settings record. Loaded is transient and never persisted.
type State struct {
	Loaded          bool     `json:"-"`
	DeviceID        string   `json:"deviceId"`
	PalettePresetID string   `json:"palettePresetId"`
	CustomPalette   []string `json:"customPalette"`
	Theme           Theme    `json:"theme"`
	ReminderEnabled bool     `json:"reminderEnabled"`
	ReminderTime    string   `json:"reminderTime"`
	ActionsDone     []Action `json:"actionsDone"`
	Steps           []Step   `json:"steps"`
}

// Export is the settings shape written into export documents: the full record
// minus the transient loaded flag and the device identity.
type Export struct {
	PalettePresetID string   `json:"palettePresetId"`
	CustomPalette   []string `json:"customPalette"`
	Theme           Theme    `json:"theme"`
	ReminderEnabled bool     `json:"reminderEnabled"`
	ReminderTime    string   `json:"reminderTime"`
	ActionsDone     []Action `json:"actionsDone"`
	Steps           []Step   `json:"steps"`
}

// Default returns the initial settings record. The default palette preset is
// active; no custom palette is set.
func Default() State {
	return State{
		PalettePresetID: DefaultPreset().ID,
		Theme:           ThemeSystem,
		ReminderEnabled: false,
		ReminderTime:    "18:00",
		ActionsDone:     []Action{},
		Steps:           StepOptions(),
	}
}

func (s State) Export() Export {
	return Export{
		PalettePresetID: s.PalettePresetID,
		CustomPalette:   s.CustomPalette,
		Theme:           s.Theme,
		ReminderEnabled: s.ReminderEnabled,
		ReminderTime:    s.ReminderTime,
		ActionsDone:     s.ActionsDone,
		Steps:           s.Steps,
	}
}

func (s State) hasStep(step Step) bool {
	for _, candidate := range s.Steps {
		if candidate == step {
			return true
		}
	}
	return false
}

func (s State) hasActionDone(title string) bool {
	for _, a := range s.ActionsDone {
		if a.Title == title {
			return true
		}
	}
	return false
}

func newAction(title string, now time.Time) Action {
	return Action{Title: title, Date: entry.Timestamp{Time: now}}
}
