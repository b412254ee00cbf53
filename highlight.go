package mdhtml

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var fenceFormatter = chromahtml.New(chromahtml.PreventSurroundingPre(true))

// highlightHTML writes code highlighted with inline styles. It returns false
// without writing anything when the language is unknown or tokenizing fails.
func highlightHTML(b *strings.Builder, lang, code, styleName string) bool {
	return highlight(b, fenceFormatter, lang, code, styleName)
}

// highlightTerminal writes code highlighted with 24-bit ANSI sequences.
func highlightTerminal(b *strings.Builder, lang, code, styleName string) bool {
	return highlight(b, formatters.TTY16m, lang, code, styleName)
}

func highlight(b *strings.Builder, f chroma.Formatter, lang, code, styleName string) bool {
	if lang == "" {
		return false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return false
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return false
	}
	var buf strings.Builder
	if err := f.Format(&buf, styles.Get(styleName), iterator); err != nil {
		return false
	}
	b.WriteString(buf.String())
	return true
}

// HighlightStyles returns the names of the available highlight styles.
func HighlightStyles() []string {
	return styles.Names()
}
