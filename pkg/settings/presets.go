package settings

// Preset is a built-in color scale for the mood palette. Colors run from the
// lowest rating to the highest.
type Preset struct {
	ID     string
	Name   string
	Colors []string
}

// Presets lists the built-in palettes. The first one is the default.
func Presets() []Preset {
	return []Preset{
		{
			ID:   "pixy",
			Name: "Pixy",
			Colors: []string{
				"#D32F2F", "#F4511E", "#FB8C00",
				"#FDD835", "#9CCC65", "#66BB6A", "#2E7D32",
			},
		},
		{
			ID:   "sunset",
			Name: "Sunset",
			Colors: []string{
				"#54478C", "#2C699A", "#0B9AB8",
				"#EFEA5A", "#F29E4C", "#F17105", "#D11149",
			},
		},
		{
			ID:   "ocean",
			Name: "Ocean",
			Colors: []string{
				"#03045E", "#023E8A", "#0077B6",
				"#00B4D8", "#48CAE4", "#90E0EF", "#CAF0F8",
			},
		},
	}
}

func DefaultPreset() Preset {
	return Presets()[0]
}

// PresetByID looks a preset up, reporting whether it exists.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// ActivePalette resolves the color scale the settings currently select:
// the custom palette when set, the preset otherwise. Exactly one of the two
// is ever non-empty after a settings write.
func (s State) ActivePalette() []string {
	if len(s.CustomPalette) > 0 {
		return s.CustomPalette
	}
	if p, ok := PresetByID(s.PalettePresetID); ok {
		return p.Colors
	}
	return DefaultPreset().Colors
}
