package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of everything that is not artwork.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	// Empty and Hatch alternate on unpainted cells.
	Empty lipgloss.Color
	Hatch lipgloss.Color
}

var (
	ThemeZinc = Theme{
		Name:      "zinc",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#a1a1aa"),
		Accent:    lipgloss.Color("#3b82f6"),
		Text:      lipgloss.Color("#f4f4f5"),
		Muted:     lipgloss.Color("#71717a"),
		Error:     lipgloss.Color("#ef4444"),
		Empty:     lipgloss.Color("#3f3f46"),
		Hatch:     lipgloss.Color("#34343a"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Error:     lipgloss.Color("#ff0000"),
		Empty:     lipgloss.Color("#1a001a"),
		Hatch:     lipgloss.Color("#140014"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Error:     lipgloss.Color("#ff0000"),
		Empty:     lipgloss.Color("#002200"),
		Hatch:     lipgloss.Color("#001a00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Error:     lipgloss.Color("#ff4444"),
		Empty:     lipgloss.Color("#002244"),
		Hatch:     lipgloss.Color("#001a33"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Error:     lipgloss.Color("#ff4757"),
		Empty:     lipgloss.Color("#3d2b3e"),
		Hatch:     lipgloss.Color("#2d1b2e"),
	}

	Themes = []Theme{
		ThemeZinc,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to zinc.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeZinc
}

func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
