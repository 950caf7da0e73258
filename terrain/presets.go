package terrain

import "fmt"

// Preset is a named environment that selects one of the terrain biomes.
type Preset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Biome Biome  `json:"biome"`
}

// DefaultPresetID is the preset a scene starts with when none is configured.
const DefaultPresetID = "volcanic"

// Presets lists the built-in environments.
var Presets = []Preset{
	{ID: "desert", Name: "SCORCHED DESERT", Biome: Sand},
	{ID: "volcanic", Name: "VOLCANIC ASHLANDS", Biome: Sand},
	{ID: "arctic_zero", Name: "ARCTIC ZERO", Biome: Ice},
	{ID: "mars_canyon", Name: "MARS CANYON", Biome: Canyon},
	{ID: "electric_bogaloo", Name: "ELECTRIC BOGALOO", Biome: Crystal},
	{ID: "dirt_day", Name: "TERRA FIRMA (DAY)", Biome: Sand},
	{ID: "nuclear", Name: "NUCLEAR FALLOUT", Biome: Sand},
}

// PresetByID looks up a built-in preset.
func PresetByID(id string) (Preset, error) {
	for _, p := range Presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", id)
}
