package tui

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/niklas-heer/ved/internal/config"
)

// ThemeColors holds all color definitions using hex codes or ANSI
// color numbers.
type ThemeColors struct {
	Base       string `toml:"Base"`       // default foreground
	Dim        string `toml:"Dim"`        // muted text, the ~ filler past the buffer end
	Accent     string `toml:"Accent"`     // mode indicator, prompt title
	Selection  string `toml:"Selection"`  // visual selection background
	Cursor     string `toml:"Cursor"`     // cursor cell background
	Warning    string `toml:"Warning"`    // info messages
	AlertError string `toml:"AlertError"` // errors
}

// Theme bundles the lipgloss styles the renderer uses.
type Theme struct {
	Name      string
	Base      lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Mode      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}

var defaultColors = ThemeColors{
	Base:       "7",
	Dim:        "8",
	Accent:     "6",
	Selection:  "8",
	Cursor:     "7",
	Warning:    "3",
	AlertError: "1",
}

// NewTheme builds styles from a color set.
func NewTheme(name string, c ThemeColors) Theme {
	return Theme{
		Name:      name,
		Base:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Base)),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Dim)),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Base)).Reverse(true),
		Mode:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color(c.Selection)),
		Cursor:    lipgloss.NewStyle().Background(lipgloss.Color(c.Cursor)).Foreground(lipgloss.Color("0")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.AlertError)).Bold(true),
	}
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return NewTheme("default", defaultColors)
}

// LoadTheme reads a toml theme file from the config directory's themes
// folder, falling back to the default scheme.
func LoadTheme(name string) Theme {
	if name == "" || name == "default" {
		return DefaultTheme()
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return DefaultTheme()
	}
	path := filepath.Join(dir, "themes", name+".toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme()
	}
	colors := defaultColors
	if err := toml.Unmarshal(data, &colors); err != nil {
		return DefaultTheme()
	}
	return NewTheme(name, colors)
}
