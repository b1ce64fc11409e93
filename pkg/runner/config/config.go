// Package config holds the preference runners: showing the current record and
// setting theme, palette, reminder, and logging steps.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/settings"
)

type Show struct {
	Settings *settings.Store
}

func (n *Show) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not show settings, no store")
	}

	st := n.Settings.State()
	bold := color.New(color.Bold)

	palette := st.PalettePresetID
	if len(st.CustomPalette) > 0 {
		palette = "custom (" + strings.Join(st.CustomPalette, " ") + ")"
	}

	reminder := "off"
	if st.ReminderEnabled {
		reminder = st.ReminderTime
	}

	steps := make([]string, 0, len(st.Steps))
	for _, s := range st.Steps {
		steps = append(steps, string(s))
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("theme"), string(st.Theme))
	tbl.AddRow(bold.Sprint("palette"), palette)
	tbl.AddRow(bold.Sprint("reminder"), reminder)
	tbl.AddRow(bold.Sprint("steps"), strings.Join(steps, ", "))
	tbl.AddRow(bold.Sprint("device"), st.DeviceID)

	fmt.Println("")
	fmt.Println(tbl)
	fmt.Println("")
	return nil
}

type Theme struct {
	Theme    string
	Settings *settings.Store
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not set the theme, no store")
	}

	switch settings.Theme(n.Theme) {
	case settings.ThemeLight, settings.ThemeDark, settings.ThemeSystem:
	default:
		return fmt.Errorf("unknown theme %q (light, dark, system)", n.Theme)
	}

	n.Settings.SetTheme(settings.Theme(n.Theme))
	fmt.Printf("theme set to %s\n", n.Theme)
	return nil
}

type Palette struct {
	Preset   string
	Custom   []string
	List     bool
	Settings *settings.Store
}

// Do selects a preset or a custom color scale. Setting one side always clears
// the other.
func (n *Palette) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not set the palette, no store")
	}

	if n.List {
		bold := color.New(color.Bold)
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, p := range settings.Presets() {
			tbl.AddRow(bold.Sprint(p.ID), p.Name, strings.Join(p.Colors, " "))
		}
		fmt.Println(tbl)
		return nil
	}

	if len(n.Custom) > 0 {
		n.Settings.SetCustomPalette(n.Custom)
		fmt.Println("custom palette set")
		return nil
	}
	if n.Preset != "" {
		if err := n.Settings.SetPalettePreset(n.Preset); err != nil {
			return err
		}
		fmt.Printf("palette set to %s\n", n.Preset)
		return nil
	}
	return errors.New("a preset or a custom color list is required")
}

type Reminder struct {
	Enabled  bool
	At       string
	Settings *settings.Store
}

func (n *Reminder) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not set the reminder, no store")
	}

	n.Settings.SetReminder(n.Enabled, n.At)
	if n.Enabled {
		fmt.Printf("reminder on at %s\n", n.Settings.State().ReminderTime)
	} else {
		fmt.Println("reminder off")
	}
	return nil
}

type Step struct {
	Step     string
	Enable   *bool
	Settings *settings.Store
}

// Do toggles one logging-flow step, or forces it on/off when Enable is set.
func (n *Step) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not toggle a step, no store")
	}

	step, err := settings.ParseStep(n.Step)
	if err != nil {
		return err
	}

	n.Settings.ToggleStep(step, n.Enable)
	if n.Settings.HasStep(step) {
		fmt.Printf("step %s on\n", step)
	} else {
		fmt.Printf("step %s off\n", step)
	}
	return nil
}
