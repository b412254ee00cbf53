package mdhtml

import (
	"sort"
	"strings"

	"pkt.systems/mdhtml/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal renderer.
type Styles struct {
	Text          Style
	Heading       [6]Style
	Emphasis      Style
	Strong        Style
	Strike        Style
	CodeBlock     Style
	Quote         Style
	ListMarker    Style
	TableBorder   Style
	TableHeader   Style
	ThematicBreak Style
}

// Theme provides named styles for terminal rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:          style(p.Text),
		Heading:       [6]Style{style(palette.Bold, p.H1), style(palette.Bold, p.H2), style(palette.Bold, p.H3), style(p.H4), style(p.H5), style(p.H6)},
		Emphasis:      style(palette.Italic, p.Emphasis),
		Strong:        style(palette.Bold, p.Strong),
		Strike:        style(palette.Strikethrough, p.Strike),
		CodeBlock:     style(p.CodeBlock),
		Quote:         style(p.Quote),
		ListMarker:    style(p.ListMarker),
		TableBorder:   style(p.TableBorder),
		TableHeader:   style(palette.Bold, p.TableHeader),
		ThematicBreak: style(p.ThematicBreak),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"tokyo-night":    theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"github-light":   theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"boring":         theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
