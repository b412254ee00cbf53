package mdhtml

import (
	"strconv"
	"strings"
)

var headingMarkup = [...]string{"", "#", "##", "###", "####", "#####", "######"}

var headingTags = [...]string{"", "h1", "h2", "h3", "h4", "h5", "h6"}

// Parse splits source into lines and returns the block token stream. Text
// bearing blocks carry their inline stream as the Children of an inline
// token. Parse never fails; unrecognized lines become paragraphs.
func Parse(source string) []Token {
	s := blockScanner{lines: strings.Split(source, "\n")}
	s.scan()
	return s.tokens
}

type blockScanner struct {
	lines  []string
	tokens []Token

	// number of the last ordered item emitted in the open ordered list,
	// zero while no ordered list is open
	orderedNum int
}

func (s *blockScanner) scan() {
	for i := 0; i < len(s.lines); i++ {
		line := strings.TrimSpace(s.lines[i])
		if line == "" {
			continue
		}
		if isTableRow(line) {
			if next, ok := s.table(i, line); ok {
				i = next
				continue
			}
		}
		if level, content, ok := parseHeading(line); ok {
			s.heading(i, level, content)
			continue
		}
		if marker, content, ok := parseBulletItem(line); ok {
			s.bulletItem(i, marker, content)
			continue
		}
		if content, ok := parseOrderedItem(line); ok {
			s.orderedItem(i, content)
			continue
		}
		if lang, ok := parseFenceOpen(line); ok {
			i = s.fence(i, lang)
			continue
		}
		if depth, content, ok := parseQuotePrefix(line); ok {
			s.blockquote(i, depth, content)
			continue
		}
		if isThematicBreak(line) {
			s.push(Token{
				Type:    TypeHR,
				Tag:     "hr",
				Map:     lineRange(i, i+1),
				Nesting: NestingNone,
				Markup:  line[:1],
				Block:   true,
			})
			continue
		}
		s.paragraph(i, line)
	}
}

func (s *blockScanner) push(tok Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *blockScanner) inline(i, level int, content string) {
	s.push(Token{
		Type:     TypeInline,
		Map:      lineRange(i, i+1),
		Nesting:  NestingNone,
		Level:    level,
		Children: ParseInline(content),
		Content:  content,
		Block:    true,
	})
}

// table consumes a header row, its alignment row and all following data
// rows. It returns the index of the last consumed line, or false when the
// line after the header is not an alignment row.
func (s *blockScanner) table(i int, header string) (int, bool) {
	if i+1 >= len(s.lines) {
		return i, false
	}
	aligns, ok := parseAlignRow(strings.TrimSpace(s.lines[i+1]))
	if !ok {
		return i, false
	}
	start := i
	rows := [][]TableCell{tableCells(header, aligns)}
	i++
	for i+1 < len(s.lines) {
		row := strings.TrimSpace(s.lines[i+1])
		if !isTableRow(row) {
			break
		}
		rows = append(rows, tableCells(row, aligns))
		i++
	}
	s.push(Token{
		Type:    TypeTableOpen,
		Tag:     "table",
		Map:     lineRange(start, i+1),
		Nesting: NestingOpen,
		Meta:    &TableMeta{Rows: rows, Aligns: aligns},
		Block:   true,
	})
	s.push(Token{
		Type:    TypeTableClose,
		Tag:     "table",
		Nesting: NestingClose,
		Block:   true,
	})
	return i, true
}

func (s *blockScanner) heading(i, level int, content string) {
	tag := headingTags[level]
	markup := headingMarkup[level]
	s.push(Token{
		Type: TypeHeadingOpen,
		Tag:  tag,
		Attrs: []Attr{
			{Name: "class", Value: "line"},
			{Name: "data-line", Value: strconv.Itoa(i)},
		},
		Map:     lineRange(i, i+1),
		Nesting: NestingOpen,
		Markup:  markup,
		Block:   true,
	})
	s.inline(i, 1, content)
	s.push(Token{
		Type:    TypeHeadingClose,
		Tag:     tag,
		Nesting: NestingClose,
		Markup:  markup,
		Block:   true,
	})
}

// bulletItem emits a complete single item list. Consecutive bullet lines
// are not merged into one list.
func (s *blockScanner) bulletItem(i int, marker, content string) {
	s.push(Token{
		Type:    TypeBulletListOpen,
		Tag:     "ul",
		Map:     lineRange(i, i+1),
		Nesting: NestingOpen,
		Markup:  marker,
		Block:   true,
	})
	s.push(Token{
		Type:    TypeListItemOpen,
		Tag:     "li",
		Map:     lineRange(i, i+1),
		Nesting: NestingOpen,
		Level:   1,
		Markup:  marker,
		Block:   true,
	})
	s.inline(i, 2, content)
	s.push(Token{
		Type:    TypeListItemClose,
		Tag:     "li",
		Nesting: NestingClose,
		Level:   1,
		Markup:  marker,
		Block:   true,
	})
	s.push(Token{
		Type:    TypeBulletListClose,
		Tag:     "ul",
		Nesting: NestingClose,
		Markup:  marker,
		Block:   true,
	})
}

// orderedItem groups consecutive ordered lines into one list and numbers
// them 1..N whatever digits were typed.
func (s *blockScanner) orderedItem(i int, content string) {
	if s.orderedNum == 0 {
		s.push(Token{
			Type:    TypeOrderedListOpen,
			Tag:     "ol",
			Attrs:   []Attr{{Name: "start", Value: "1"}},
			Map:     lineRange(i, i+1),
			Nesting: NestingOpen,
			Markup:  "1.",
			Block:   true,
		})
	}
	s.orderedNum++
	markup := strconv.Itoa(s.orderedNum) + "."
	s.push(Token{
		Type:    TypeListItemOpen,
		Tag:     "li",
		Map:     lineRange(i, i+1),
		Nesting: NestingOpen,
		Level:   1,
		Markup:  markup,
		Block:   true,
	})
	s.inline(i, 2, content)
	s.push(Token{
		Type:    TypeListItemClose,
		Tag:     "li",
		Nesting: NestingClose,
		Level:   1,
		Markup:  markup,
		Block:   true,
	})
	if i+1 < len(s.lines) {
		if _, ok := parseOrderedItem(strings.TrimSpace(s.lines[i+1])); ok {
			return
		}
	}
	s.push(Token{
		Type:    TypeOrderedListClose,
		Tag:     "ol",
		Nesting: NestingClose,
		Markup:  "1.",
		Block:   true,
	})
	s.orderedNum = 0
}

// fence collects raw lines up to the closing fence and returns the index of
// the closing line. An unclosed fence runs to the end of the document.
func (s *blockScanner) fence(i int, lang string) int {
	var body strings.Builder
	j := i + 1
	for j < len(s.lines) && !strings.HasPrefix(strings.TrimSpace(s.lines[j]), "```") {
		body.WriteString(s.lines[j])
		body.WriteByte('\n')
		j++
	}
	s.push(Token{
		Type:    TypeFence,
		Tag:     "code",
		Attrs:   []Attr{{Name: "class", Value: "language-" + lang}},
		Map:     lineRange(i, j),
		Nesting: NestingNone,
		Content: strings.TrimSpace(body.String()),
		Markup:  "```",
		Info:    lang,
		Block:   true,
	})
	return j
}

func (s *blockScanner) blockquote(i, depth int, content string) {
	for level := 0; level < depth; level++ {
		s.push(Token{
			Type:    TypeBlockquoteOpen,
			Tag:     "blockquote",
			Map:     lineRange(i, i+1),
			Nesting: NestingOpen,
			Level:   level,
			Markup:  ">",
			Block:   true,
		})
	}
	s.inline(i, depth, content)
	for level := depth - 1; level >= 0; level-- {
		s.push(Token{
			Type:    TypeBlockquoteClose,
			Tag:     "blockquote",
			Nesting: NestingClose,
			Level:   level,
			Markup:  ">",
			Block:   true,
		})
	}
}

func (s *blockScanner) paragraph(i int, line string) {
	s.push(Token{
		Type:    TypeParagraphOpen,
		Tag:     "p",
		Map:     lineRange(i, i+1),
		Nesting: NestingOpen,
		Block:   true,
	})
	s.inline(i, 1, line)
	s.push(Token{
		Type:    TypeParagraphClose,
		Tag:     "p",
		Nesting: NestingClose,
		Block:   true,
	})
}

func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|")
}

// splitCells returns the trimmed, non-blank cells of a pipe delimited row.
func splitCells(row string) []string {
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		if cell := strings.TrimSpace(part); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

func tableCells(row string, aligns []Align) []TableCell {
	cells := splitCells(row)
	out := make([]TableCell, len(cells))
	for idx, cell := range cells {
		out[idx] = TableCell{Content: cell}
		if idx < len(aligns) {
			out[idx].Align = aligns[idx]
		}
	}
	return out
}

func parseAlignRow(line string) ([]Align, bool) {
	if !isTableRow(line) {
		return nil, false
	}
	cells := splitCells(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]Align, len(cells))
	for idx, cell := range cells {
		if !strings.Contains(cell, "-") {
			return nil, false
		}
		switch {
		case strings.HasPrefix(cell, ":") && strings.HasSuffix(cell, ":") && len(cell) > 1:
			aligns[idx] = AlignCenter
		case strings.HasSuffix(cell, ":"):
			aligns[idx] = AlignRight
		default:
			aligns[idx] = AlignLeft
		}
	}
	return aligns, true
}

func parseHeading(text string) (int, string, bool) {
	if !strings.HasPrefix(text, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level > 6 {
		return 0, "", false
	}
	return level, strings.TrimSpace(text[level:]), true
}

func parseBulletItem(text string) (string, string, bool) {
	if len(text) < 2 || text[1] != ' ' {
		return "", "", false
	}
	if text[0] != '-' && text[0] != '*' {
		return "", "", false
	}
	return text[:1], text[2:], true
}

// parseOrderedItem matches digits, a dot and one space or tab, and returns
// the text after that separator.
func parseOrderedItem(text string) (string, bool) {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(text) || text[i] != '.' || !isSpace(text[i+1]) {
		return "", false
	}
	return text[i+2:], true
}

func parseFenceOpen(text string) (string, bool) {
	if !strings.HasPrefix(text, "```") {
		return "", false
	}
	return strings.TrimSpace(text[3:]), true
}

// parseQuotePrefix counts leading '>' markers, trimming leading whitespace
// after each one.
func parseQuotePrefix(line string) (int, string, bool) {
	depth := 0
	for strings.HasPrefix(line, ">") {
		depth++
		line = strings.TrimLeft(line[1:], " \t")
	}
	if depth == 0 {
		return 0, line, false
	}
	return depth, line, true
}

func isThematicBreak(text string) bool {
	if len(text) < 3 {
		return false
	}
	ch := text[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] != ch {
			return false
		}
	}
	return true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
