package mdhtml

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"

	"pkt.systems/mdhtml/internal/palette"
)

const defaultRuleWidth = 40

// TerminalOptions configures RenderTerminal.
type TerminalOptions struct {
	// Width is the wrap width in columns; zero disables wrapping.
	Width int
	// Theme defaults to DefaultTheme.
	Theme Theme
	// Highlight names a chroma style for fenced code; empty prints code plain.
	Highlight string
}

// RenderTerminal renders a token stream as ANSI styled text, the terminal
// counterpart of Render.
func RenderTerminal(w io.Writer, tokens []Token, opts TerminalOptions) error {
	if w == nil {
		return fmt.Errorf("render terminal: writer is nil")
	}
	th := opts.Theme
	if th == nil {
		th = DefaultTheme()
	}
	r := terminalRenderer{
		width:     opts.Width,
		styles:    th.Styles(),
		highlight: opts.Highlight,
	}
	r.render(tokens)
	if _, err := io.WriteString(w, r.b.String()); err != nil {
		return fmt.Errorf("render terminal: write: %w", err)
	}
	return nil
}

type terminalRenderer struct {
	width     int
	styles    Styles
	highlight string
	b         strings.Builder

	prevBlock  TokenType
	heading    int
	quoteDepth int
	marker     string
}

func (r *terminalRenderer) render(tokens []Token) {
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Type {
		case TypeHeadingOpen:
			r.startBlock(tok.Type)
			r.heading = len(tok.Markup)
		case TypeHeadingClose:
			r.heading = 0
		case TypeParagraphOpen, TypeBulletListOpen, TypeOrderedListOpen:
			r.startBlock(tok.Type)
		case TypeBlockquoteOpen:
			if r.quoteDepth == 0 {
				r.startBlock(tok.Type)
			}
			r.quoteDepth++
		case TypeBlockquoteClose:
			r.quoteDepth--
		case TypeListItemOpen:
			r.marker = tok.Markup + " "
		case TypeListItemClose:
			r.marker = ""
		case TypeInline:
			r.inline(tok)
		case TypeFence:
			r.startBlock(tok.Type)
			r.fence(tok)
		case TypeHR:
			r.startBlock(tok.Type)
			n := r.width
			if n <= 0 {
				n = defaultRuleWidth
			}
			r.b.WriteString(styled(r.styles.ThematicBreak, strings.Repeat("─", n)))
			r.b.WriteByte('\n')
		case TypeTableOpen:
			r.startBlock(tok.Type)
			r.table(tok.Meta)
		}
	}
}

// startBlock separates top level blocks with a blank line. Runs of single
// item bullet lists and of quote lines stay together.
func (r *terminalRenderer) startBlock(t TokenType) {
	if r.prevBlock != "" {
		joined := t == r.prevBlock && (t == TypeBulletListOpen || t == TypeBlockquoteOpen)
		if !joined {
			r.b.WriteByte('\n')
		}
	}
	r.prevBlock = t
}

func (r *terminalRenderer) baseStyle() Style {
	switch {
	case r.heading > 0:
		return r.styles.Heading[r.heading-1]
	case r.quoteDepth > 0:
		return r.styles.Quote
	default:
		return r.styles.Text
	}
}

func (r *terminalRenderer) inline(tok *Token) {
	base := r.baseStyle()
	var text strings.Builder
	if tok.Children == nil {
		text.WriteString(styled(base, tok.Content))
	}
	var span Style
	for _, child := range tok.Children {
		switch child.Type {
		case TypeStrongOpen:
			span = r.styles.Strong
		case TypeEmOpen:
			span = r.styles.Emphasis
		case TypeDelOpen:
			span = r.styles.Strike
		case TypeStrongClose, TypeEmClose, TypeDelClose:
			span = Style{}
		case TypeText:
			text.WriteString(styled(Style{Prefix: base.Prefix + span.Prefix}, child.Content))
		}
	}

	var first, rest string
	switch {
	case r.quoteDepth > 0:
		first = styled(r.styles.Quote, strings.Repeat("> ", r.quoteDepth))
		rest = first
	case r.heading > 0:
		first = styled(base, headingMarkup[r.heading]+" ")
		rest = strings.Repeat(" ", r.heading+1)
	case r.marker != "":
		first = styled(r.styles.ListMarker, r.marker)
		rest = strings.Repeat(" ", len(r.marker))
	}
	limit := 0
	if r.width > 0 {
		limit = r.width - ansi.PrintableRuneWidth(first)
		if limit < 1 {
			limit = 1
		}
	}
	for i, line := range wrapLines(text.String(), limit) {
		if i == 0 {
			r.b.WriteString(first)
		} else {
			r.b.WriteString(rest)
		}
		r.b.WriteString(line)
		r.b.WriteByte('\n')
	}
}

func (r *terminalRenderer) fence(tok *Token) {
	if tok.Content == "" {
		return
	}
	if r.highlight != "" {
		var hl strings.Builder
		if highlightTerminal(&hl, tok.Info, tok.Content, r.highlight) {
			r.b.WriteString(trimTrailingNewlines(hl.String()))
			r.b.WriteByte('\n')
			return
		}
	}
	for _, line := range strings.Split(tok.Content, "\n") {
		r.b.WriteString(styled(r.styles.CodeBlock, line))
		r.b.WriteByte('\n')
	}
}

func (r *terminalRenderer) table(meta *TableMeta) {
	if meta == nil || len(meta.Rows) == 0 {
		return
	}
	cols := 0
	for _, row := range meta.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}
	widths := make([]int, cols)
	for _, row := range meta.Rows {
		for c, cell := range row {
			if w := ansi.PrintableRuneWidth(cell.Content); w > widths[c] {
				widths[c] = w
			}
		}
	}
	r.fitColumns(widths)

	border := styled(r.styles.TableBorder, "|")
	for i, row := range meta.Rows {
		r.b.WriteString(border)
		for c := 0; c < cols; c++ {
			var cell TableCell
			if c < len(row) {
				cell = row[c]
			} else if c < len(meta.Aligns) {
				cell.Align = meta.Aligns[c]
			}
			text := padCell(truncateWithEllipsis(cell.Content, widths[c]), widths[c], cell.Align)
			if i == 0 {
				text = styled(r.styles.TableHeader, text)
			}
			r.b.WriteByte(' ')
			r.b.WriteString(text)
			r.b.WriteByte(' ')
			r.b.WriteString(border)
		}
		r.b.WriteByte('\n')
		if i == 0 {
			r.alignRow(widths, meta.Aligns)
		}
	}
}

// fitColumns narrows the widest columns until the table fits the width.
func (r *terminalRenderer) fitColumns(widths []int) {
	if r.width <= 0 {
		return
	}
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	for total > r.width {
		widest := 0
		for c := range widths {
			if widths[c] > widths[widest] {
				widest = c
			}
		}
		if widths[widest] <= 1 {
			return
		}
		widths[widest]--
		total--
	}
}

func (r *terminalRenderer) alignRow(widths []int, aligns []Align) {
	var row strings.Builder
	row.WriteByte('|')
	for c, w := range widths {
		var align Align
		if c < len(aligns) {
			align = aligns[c]
		}
		dashes := []byte(strings.Repeat("-", w+2))
		switch align {
		case AlignCenter:
			dashes[0], dashes[len(dashes)-1] = ':', ':'
		case AlignRight:
			dashes[len(dashes)-1] = ':'
		}
		row.Write(dashes)
		row.WriteByte('|')
	}
	r.b.WriteString(styled(r.styles.TableBorder, row.String()))
	r.b.WriteByte('\n')
}

// trimTrailingNewlines drops final newlines, including one that sits inside
// a closing color reset.
func trimTrailingNewlines(s string) string {
	s = strings.TrimRight(s, "\n")
	if body, ok := strings.CutSuffix(s, palette.Reset); ok {
		return strings.TrimRight(body, "\n") + palette.Reset
	}
	return s
}

func styled(s Style, text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + palette.Reset
}
