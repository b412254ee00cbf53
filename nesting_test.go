package mdhtml

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckNestingAcceptsParsedSamples(t *testing.T) {
	for _, path := range markdownSamples(t, "testdata") {
		src, err := readSample(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if err := CheckNesting(Parse(src)); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
	}
}

func TestCheckNestingRejects(t *testing.T) {
	open := Token{Type: TypeParagraphOpen, Tag: "p", Nesting: NestingOpen}
	closeP := Token{Type: TypeParagraphClose, Tag: "p", Nesting: NestingClose}
	cases := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{name: "never closed", tokens: []Token{open}, want: "never closed"},
		{name: "stray close", tokens: []Token{closeP}, want: "closes nothing"},
		{
			name: "wrong kind",
			tokens: []Token{
				open,
				{Type: TypeHeadingClose, Tag: "h1", Nesting: NestingClose},
			},
			want: "does not close",
		},
		{
			name: "level mismatch",
			tokens: []Token{
				{Type: TypeBlockquoteOpen, Tag: "blockquote", Nesting: NestingOpen, Level: 1},
				{Type: TypeBlockquoteClose, Tag: "blockquote", Nesting: NestingClose},
			},
			want: "does not close",
		},
		{
			name: "table not directly closed",
			tokens: []Token{
				{Type: TypeTableOpen, Tag: "table", Nesting: NestingOpen},
				open, closeP,
				{Type: TypeTableClose, Tag: "table", Nesting: NestingClose},
			},
			want: "not directly closed",
		},
		{
			name: "inline children",
			tokens: []Token{
				open,
				{Type: TypeInline, Children: []Token{{Type: TypeEmOpen, Tag: "em", Nesting: NestingOpen}}},
				closeP,
			},
			want: "at 1/0",
		},
	}
	for _, tc := range cases {
		err := CheckNesting(tc.tokens)
		if !errors.Is(err, ErrUnbalanced) {
			t.Fatalf("%s: expected ErrUnbalanced, got %v", tc.name, err)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected %q in %q", tc.name, tc.want, err)
		}
	}
}

func TestCheckNestingEmpty(t *testing.T) {
	if err := CheckNesting(nil); err != nil {
		t.Fatalf("nil stream: %v", err)
	}
}

func FuzzParseBalanced(f *testing.F) {
	for _, seed := range []string{
		"# h\n- a\n1. b\n   2. c\n> > q\n---\n|a|\n|-|\n```\ncode",
		"**a *b ~~c",
		"1. x\n\n1. y\n  3. z",
		"|x|\n|:-:|\n|y|\n|z|",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		tokens := Parse(src)
		if err := CheckNesting(tokens); err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		_ = Render(tokens)
	})
}
