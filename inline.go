package mdhtml

import "strings"

type spanRule struct {
	marker string
	open   TokenType
	close  TokenType
	tag    string
}

// Tried in order at every cursor position; ** must precede * so a double
// asterisk is not read as an empty emphasis first.
var spanRules = [...]spanRule{
	{marker: "~~", open: TypeDelOpen, close: TypeDelClose, tag: "del"},
	{marker: "**", open: TypeStrongOpen, close: TypeStrongClose, tag: "strong"},
	{marker: "*", open: TypeEmOpen, close: TypeEmClose, tag: "em"},
}

const inlineMarkers = "*~"

// ParseInline scans text for strikethrough, strong and emphasis spans. The
// closing marker is the first occurrence after the opener; spans do not nest
// and are not re-scanned. A marker without a closing partner is kept as
// literal text.
func ParseInline(text string) []Token {
	var tokens []Token
	pos := 0
	for pos < len(text) {
		if end, rule, ok := matchSpan(text, pos); ok {
			body := text[pos+len(rule.marker) : end]
			tokens = append(tokens,
				Token{Type: rule.open, Tag: rule.tag, Nesting: NestingOpen, Markup: rule.marker},
				Token{Type: TypeText, Nesting: NestingNone, Level: 1, Content: body},
				Token{Type: rule.close, Tag: rule.tag, Nesting: NestingClose, Markup: rule.marker},
			)
			pos = end + len(rule.marker)
			continue
		}
		start := pos
		if strings.IndexByte(inlineMarkers, text[pos]) >= 0 {
			pos++
		}
		if next := strings.IndexAny(text[pos:], inlineMarkers); next < 0 {
			pos = len(text)
		} else {
			pos += next
		}
		tokens = append(tokens, Token{Type: TypeText, Nesting: NestingNone, Content: text[start:pos]})
	}
	return tokens
}

// matchSpan reports the first rule whose marker starts at pos and is closed
// later in text, with the offset of the closing marker.
func matchSpan(text string, pos int) (int, spanRule, bool) {
	rest := text[pos:]
	for _, rule := range spanRules {
		if !strings.HasPrefix(rest, rule.marker) {
			continue
		}
		from := pos + len(rule.marker)
		if idx := strings.Index(text[from:], rule.marker); idx >= 0 {
			return from + idx, rule, true
		}
	}
	return 0, spanRule{}, false
}
