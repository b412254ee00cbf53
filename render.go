package mdhtml

import (
	"html"
	"strings"
)

const (
	blockquoteStyle  = `color: #666; border-left: 4px solid #ddd; padding-left: 1em;`
	orderedListStyle = `list-style-position: inside; padding-left: 1.5em;`
	preStyle         = `background-color: #f6f8fa; padding: 16px; border-radius: 6px; margin: 16px 0;`
	codeStyle        = `font-family: 'Monaco', monospace;`
	hrHTML           = `<hr style="border: none; border-top: 1px solid #ddd; margin: 1em 0;">`
	tableStyle       = `border-collapse: collapse; width: 100%; margin: 16px 0;`
	cellStyle        = `border: 1px solid #ddd; padding: 8px; text-align: `
)

// Render emits the HTML fragment for a token stream. Inline tokens are
// rendered through their children, tables from their Meta rows. Token types
// the renderer does not know are skipped.
func Render(tokens []Token, opts ...RenderOption) string {
	r := htmlRenderer{cfg: newRenderConfig(opts)}
	r.render(tokens)
	return r.b.String()
}

// ToHTML parses source and renders it.
func ToHTML(source string, opts ...RenderOption) string {
	return Render(Parse(source), opts...)
}

type htmlRenderer struct {
	cfg renderConfig
	b   strings.Builder
}

func (r *htmlRenderer) render(tokens []Token) {
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Type {
		case TypeHeadingOpen, TypeParagraphOpen, TypeStrongOpen, TypeEmOpen, TypeDelOpen,
			TypeBulletListOpen, TypeOrderedListOpen, TypeListItemOpen, TypeBlockquoteOpen:
			r.openTag(tok)
		case TypeHeadingClose, TypeParagraphClose, TypeStrongClose, TypeEmClose, TypeDelClose,
			TypeBulletListClose, TypeOrderedListClose, TypeListItemClose, TypeBlockquoteClose:
			r.b.WriteString("</")
			r.b.WriteString(tok.Tag)
			r.b.WriteByte('>')
		case TypeFence:
			r.fence(tok)
		case TypeHR:
			r.b.WriteString(hrHTML)
		case TypeTableOpen:
			r.table(tok)
		case TypeTableClose:
			r.b.WriteString("</table>")
		case TypeInline:
			if tok.Children != nil {
				r.render(tok.Children)
			} else {
				r.text(tok.Content)
			}
		case TypeText:
			r.text(tok.Content)
		}
	}
}

func (r *htmlRenderer) openTag(tok *Token) {
	r.b.WriteByte('<')
	r.b.WriteString(tok.Tag)
	switch tok.Type {
	case TypeBlockquoteOpen:
		r.styleAttr(blockquoteStyle)
	case TypeOrderedListOpen:
		r.attrs(tok.Attrs)
		r.styleAttr(orderedListStyle)
	case TypeHeadingOpen:
		if r.cfg.sourceMap {
			r.attrs(tok.Attrs)
		}
	}
	r.b.WriteByte('>')
}

func (r *htmlRenderer) attrs(attrs []Attr) {
	for _, a := range attrs {
		r.b.WriteByte(' ')
		r.b.WriteString(a.Name)
		r.b.WriteString(`="`)
		r.b.WriteString(a.Value)
		r.b.WriteByte('"')
	}
}

func (r *htmlRenderer) styleAttr(style string) {
	r.b.WriteString(` style="`)
	r.b.WriteString(style)
	r.b.WriteByte('"')
}

func (r *htmlRenderer) text(s string) {
	if r.cfg.escapeHTML {
		s = html.EscapeString(s)
	}
	r.b.WriteString(s)
}

func (r *htmlRenderer) fence(tok *Token) {
	class, _ := tok.Attr("class")
	r.b.WriteString(`<pre style="`)
	r.b.WriteString(preStyle)
	r.b.WriteString(`"><code class="`)
	r.b.WriteString(class)
	r.b.WriteString(`" style="`)
	r.b.WriteString(codeStyle)
	r.b.WriteString(`">`)
	if r.cfg.highlightStyle == "" || !highlightHTML(&r.b, tok.Info, tok.Content, r.cfg.highlightStyle) {
		r.text(tok.Content)
	}
	r.b.WriteString("</code></pre>")
}

func (r *htmlRenderer) table(tok *Token) {
	r.b.WriteString(`<table style="`)
	r.b.WriteString(tableStyle)
	r.b.WriteString(`">`)
	if tok.Meta == nil || len(tok.Meta.Rows) == 0 {
		return
	}
	rows := tok.Meta.Rows
	r.b.WriteString("<thead><tr>")
	for _, cell := range rows[0] {
		r.cell("th", cell)
	}
	r.b.WriteString("</tr></thead>")
	if len(rows) == 1 {
		return
	}
	r.b.WriteString("<tbody>")
	for _, row := range rows[1:] {
		r.b.WriteString("<tr>")
		for _, cell := range row {
			r.cell("td", cell)
		}
		r.b.WriteString("</tr>")
	}
	r.b.WriteString("</tbody>")
}

func (r *htmlRenderer) cell(tag string, cell TableCell) {
	align := cell.Align
	if align == AlignNone {
		align = AlignLeft
	}
	r.b.WriteByte('<')
	r.b.WriteString(tag)
	r.b.WriteString(` style="`)
	r.b.WriteString(cellStyle)
	r.b.WriteString(string(align))
	r.b.WriteString(`;">`)
	r.text(cell.Content)
	r.b.WriteString("</")
	r.b.WriteString(tag)
	r.b.WriteByte('>')
}
