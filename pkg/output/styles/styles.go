// Package styles defines the visual styling for dotboot's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. The definitions live in the
// embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var defaultStyles []byte

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

func init() {
	if err := LoadStyles(defaultStyles); err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
}

// LoadStyles replaces the registry with the styles described by data
func LoadStyles(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		registry[name] = buildStyle(def, colors)
	}
	StyleRegistry = registry

	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
