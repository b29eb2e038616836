package config

import "sort"

// Presets are named ten-slot palettes.
var Presets = map[string][]string{
	"default": {
		"#ffffff", "#ff0000", "#00ff00", "#0000ff", "#ffff00",
		"#ff00ff", "#00ffff", "#000000", "#ff8800", "#8800ff",
	},
	"gameboy": {
		"#e0f8d0", "#88c070", "#346856", "#081820", "#c4f0c2",
		"#5ab9a8", "#1e606e", "#2d1b00", "#9bbc0f", "#0f380f",
	},
	"pastel": {
		"#fdfd96", "#ffb7b2", "#ffdac1", "#e2f0cb", "#b5ead7",
		"#c7ceea", "#f1cbff", "#aec6cf", "#ffffff", "#555555",
	},
	"grayscale": {
		"#ffffff", "#e3e3e3", "#c6c6c6", "#aaaaaa", "#8e8e8e",
		"#717171", "#555555", "#393939", "#1c1c1c", "#000000",
	},
	"sunset": {
		"#fff3b0", "#ffd166", "#f8961e", "#f3722c", "#f94144",
		"#d62246", "#9d0191", "#560bad", "#3a0ca3", "#10002b",
	},
}

func GetPreset(name string) []string {
	colors, ok := Presets[name]
	if !ok {
		return nil
	}
	return colors
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
