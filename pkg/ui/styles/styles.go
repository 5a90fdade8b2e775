// Package styles defines the visual styling for civix's terminal output.
//
// Styles are declared in the embedded styles.yaml with adaptive colors
// that follow the terminal's light or dark background. Report levels map to
// the styles of the same name (Info, Comment, Error).
package styles

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"github.com/civixgo/civix/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

var defaultRegistry Registry

func init() {
	reg, err := Parse(embeddedStyles)
	if err != nil {
		reg = fallback()
	}
	defaultRegistry = reg
}

// Default returns the registry built from the embedded styles.yaml
func Default() Registry {
	return defaultRegistry
}

// Parse builds a registry from YAML style data
func Parse(data []byte) (Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse styles data")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := make(Registry, len(config.Styles))
	for name, def := range config.Styles {
		reg[name] = buildStyle(def, colors)
	}
	return reg, nil
}

// Get returns the named style, or an unstyled one when it is not defined
func (r Registry) Get(name string) lipgloss.Style {
	if s, ok := r[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render renders text with the named style
func (r Registry) Render(name, text string) string {
	return r.Get(name).Render(text)
}

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

	if c, ok := colors[def.Foreground]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colors[def.Background]; ok {
		style = style.Background(c)
	}

	return style
}

// fallback keeps output working with plain styles if styles.yaml is broken
func fallback() Registry {
	reg := make(Registry)
	for _, name := range []string{"Info", "Comment", "Error", "Header", "Muted", "FilePath"} {
		reg[name] = lipgloss.NewStyle()
	}
	return reg
}
