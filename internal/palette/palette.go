// Package palette holds the ANSI color palettes behind the built-in
// terminal themes.
package palette

import "fmt"

// SGR attribute sequences shared by all palettes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// Palette assigns a foreground sequence to every semantic element.
type Palette struct {
	Text          string
	H1            string
	H2            string
	H3            string
	H4            string
	H5            string
	H6            string
	Emphasis      string
	Strong        string
	Strike        string
	CodeBlock     string
	Quote         string
	ListMarker    string
	TableBorder   string
	TableHeader   string
	ThematicBreak string
}

func fg(rgb uint32) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", rgb>>16&0xff, rgb>>8&0xff, rgb&0xff)
}

var PaletteDefault = Palette{
	H1:            fg(0xff5f87),
	H2:            fg(0xffaf5f),
	H3:            fg(0xffd75f),
	H4:            fg(0x87d75f),
	H5:            fg(0x5fafff),
	H6:            fg(0xaf87ff),
	Emphasis:      fg(0xd7afff),
	Strong:        fg(0xffffff),
	Strike:        fg(0x8a8a8a),
	CodeBlock:     fg(0x87d7af),
	Quote:         fg(0x8a8a8a),
	ListMarker:    fg(0x5fd7ff),
	TableBorder:   fg(0x6c6c6c),
	TableHeader:   fg(0xffd75f),
	ThematicBreak: fg(0x6c6c6c),
}

var PaletteGruvbox = Palette{
	Text:          fg(0xebdbb2),
	H1:            fg(0xfb4934),
	H2:            fg(0xfe8019),
	H3:            fg(0xfabd2f),
	H4:            fg(0xb8bb26),
	H5:            fg(0x83a598),
	H6:            fg(0xd3869b),
	Emphasis:      fg(0xd3869b),
	Strong:        fg(0xfbf1c7),
	Strike:        fg(0x928374),
	CodeBlock:     fg(0x8ec07c),
	Quote:         fg(0x928374),
	ListMarker:    fg(0xfabd2f),
	TableBorder:   fg(0x665c54),
	TableHeader:   fg(0xfabd2f),
	ThematicBreak: fg(0x665c54),
}

var PaletteDracula = Palette{
	Text:          fg(0xf8f8f2),
	H1:            fg(0xff79c6),
	H2:            fg(0xbd93f9),
	H3:            fg(0x8be9fd),
	H4:            fg(0x50fa7b),
	H5:            fg(0xffb86c),
	H6:            fg(0xf1fa8c),
	Emphasis:      fg(0xf1fa8c),
	Strong:        fg(0xffb86c),
	Strike:        fg(0x6272a4),
	CodeBlock:     fg(0x50fa7b),
	Quote:         fg(0x6272a4),
	ListMarker:    fg(0xff79c6),
	TableBorder:   fg(0x44475a),
	TableHeader:   fg(0xbd93f9),
	ThematicBreak: fg(0x6272a4),
}

var PaletteNord = Palette{
	Text:          fg(0xd8dee9),
	H1:            fg(0x88c0d0),
	H2:            fg(0x81a1c1),
	H3:            fg(0x5e81ac),
	H4:            fg(0x8fbcbb),
	H5:            fg(0xb48ead),
	H6:            fg(0xebcb8b),
	Emphasis:      fg(0xb48ead),
	Strong:        fg(0xeceff4),
	Strike:        fg(0x4c566a),
	CodeBlock:     fg(0xa3be8c),
	Quote:         fg(0x616e88),
	ListMarker:    fg(0x88c0d0),
	TableBorder:   fg(0x4c566a),
	TableHeader:   fg(0x88c0d0),
	ThematicBreak: fg(0x4c566a),
}

var PaletteTokyoNight = Palette{
	Text:          fg(0xc0caf5),
	H1:            fg(0xf7768e),
	H2:            fg(0xff9e64),
	H3:            fg(0xe0af68),
	H4:            fg(0x9ece6a),
	H5:            fg(0x7aa2f7),
	H6:            fg(0xbb9af7),
	Emphasis:      fg(0xbb9af7),
	Strong:        fg(0xc0caf5),
	Strike:        fg(0x565f89),
	CodeBlock:     fg(0x73daca),
	Quote:         fg(0x565f89),
	ListMarker:    fg(0x7dcfff),
	TableBorder:   fg(0x414868),
	TableHeader:   fg(0x7aa2f7),
	ThematicBreak: fg(0x414868),
}

var PaletteSolarizedDark = Palette{
	Text:          fg(0x839496),
	H1:            fg(0xdc322f),
	H2:            fg(0xcb4b16),
	H3:            fg(0xb58900),
	H4:            fg(0x859900),
	H5:            fg(0x268bd2),
	H6:            fg(0x6c71c4),
	Emphasis:      fg(0xd33682),
	Strong:        fg(0x93a1a1),
	Strike:        fg(0x586e75),
	CodeBlock:     fg(0x2aa198),
	Quote:         fg(0x586e75),
	ListMarker:    fg(0x268bd2),
	TableBorder:   fg(0x586e75),
	TableHeader:   fg(0xb58900),
	ThematicBreak: fg(0x586e75),
}

var PaletteGithubLight = Palette{
	Text:          fg(0x24292f),
	H1:            fg(0x0550ae),
	H2:            fg(0x0550ae),
	H3:            fg(0x0a3069),
	H4:            fg(0x0a3069),
	H5:            fg(0x57606a),
	H6:            fg(0x57606a),
	Emphasis:      fg(0x8250df),
	Strong:        fg(0x24292f),
	Strike:        fg(0x6e7781),
	CodeBlock:     fg(0x116329),
	Quote:         fg(0x57606a),
	ListMarker:    fg(0xcf222e),
	TableBorder:   fg(0x8c959f),
	TableHeader:   fg(0x0550ae),
	ThematicBreak: fg(0x8c959f),
}
