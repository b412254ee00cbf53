package mdhtml

// TokenType discriminates tokens in the stream.
type TokenType string

const (
	TypeHeadingOpen      TokenType = "heading_open"
	TypeHeadingClose     TokenType = "heading_close"
	TypeParagraphOpen    TokenType = "paragraph_open"
	TypeParagraphClose   TokenType = "paragraph_close"
	TypeBulletListOpen   TokenType = "bullet_list_open"
	TypeBulletListClose  TokenType = "bullet_list_close"
	TypeOrderedListOpen  TokenType = "ordered_list_open"
	TypeOrderedListClose TokenType = "ordered_list_close"
	TypeListItemOpen     TokenType = "list_item_open"
	TypeListItemClose    TokenType = "list_item_close"
	TypeBlockquoteOpen   TokenType = "blockquote_open"
	TypeBlockquoteClose  TokenType = "blockquote_close"
	TypeTableOpen        TokenType = "table_open"
	TypeTableClose       TokenType = "table_close"
	TypeFence            TokenType = "fence"
	TypeHR               TokenType = "hr"
	TypeInline           TokenType = "inline"
	TypeText             TokenType = "text"
	TypeStrongOpen       TokenType = "strong_open"
	TypeStrongClose      TokenType = "strong_close"
	TypeEmOpen           TokenType = "em_open"
	TypeEmClose          TokenType = "em_close"
	TypeDelOpen          TokenType = "del_open"
	TypeDelClose         TokenType = "del_close"
)

// Nesting tells whether a token opens, closes or is self-contained.
type Nesting int8

const (
	// NestingClose marks a closing token.
	NestingClose Nesting = -1
	// NestingNone marks a self-contained token.
	NestingNone Nesting = 0
	// NestingOpen marks an opening token.
	NestingOpen Nesting = 1
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LineRange is a zero-based, half-open span of source lines.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Align is the horizontal alignment of a table column.
type Align string

const (
	AlignNone   Align = ""
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TableCell is one cell of a table row.
type TableCell struct {
	Content string `json:"content"`
	Align   Align  `json:"align,omitempty"`
}

// TableMeta carries the whole table on its table_open token. Rows[0] is the
// header row.
type TableMeta struct {
	Rows   [][]TableCell `json:"rows"`
	Aligns []Align       `json:"aligns"`
}

// Token is the unit of both scanners and the input of every renderer.
//
// Attrs is nil when the token has no attributes. Children is only set on
// inline tokens and Meta only on table_open.
type Token struct {
	Type     TokenType  `json:"type"`
	Tag      string     `json:"tag,omitempty"`
	Attrs    []Attr     `json:"attrs,omitempty"`
	Map      *LineRange `json:"map,omitempty"`
	Nesting  Nesting    `json:"nesting"`
	Level    int        `json:"level"`
	Children []Token    `json:"children,omitempty"`
	Content  string     `json:"content,omitempty"`
	Markup   string     `json:"markup,omitempty"`
	Info     string     `json:"info,omitempty"`
	Meta     *TableMeta `json:"meta,omitempty"`
	Block    bool       `json:"block"`
	Hidden   bool       `json:"hidden,omitempty"`
}

// Attr returns the value of the named attribute.
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func lineRange(start, end int) *LineRange {
	return &LineRange{Start: start, End: end}
}
