package mdhtml

import (
	"bytes"
	"strings"
	"testing"
)

func TestExtractFrontMatter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		src    string
		format FrontMatterFormat
		title  string
		body   string
	}{
		{
			name:   "yaml",
			src:    "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n\nBody.\n",
			format: FrontMatterYAML,
			title:  "Post",
			body:   "\n# Hello\n\nBody.\n",
		},
		{
			name:   "toml",
			src:    "+++\ntitle = \"Post\"\n+++\n# Hello\n",
			format: FrontMatterTOML,
			title:  "Post",
			body:   "# Hello\n",
		},
		{
			name:   "json",
			src:    ";;;\n{\"title\": \"Post\"}\n;;;\n# Hello\n",
			format: FrontMatterJSON,
			title:  "Post",
			body:   "# Hello\n",
		},
		{
			name:   "crlf and bom",
			src:    "\xef\xbb\xbf---\r\ntitle: Post\r\n---\r\nBody\r\n",
			format: FrontMatterYAML,
			title:  "Post",
			body:   "Body\r\n",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fm, body, err := ExtractFrontMatter([]byte(tc.src))
			if err != nil {
				t.Fatalf("ExtractFrontMatter: %v", err)
			}
			if fm.Format != tc.format {
				t.Fatalf("format=%q want %q", fm.Format, tc.format)
			}
			if fm.Title() != tc.title {
				t.Fatalf("title=%q want %q", fm.Title(), tc.title)
			}
			if string(body) != tc.body {
				t.Fatalf("body=%q want %q", body, tc.body)
			}
		})
	}
}

func TestExtractFrontMatterIgnoresLookalikes(t *testing.T) {
	t.Parallel()
	for _, src := range []string{
		"---\n\nnot metadata\n---\n",
		"---\ntitle: never closed\n",
		"# Heading\n---\ntitle: x\n---\n",
		"---",
		"",
	} {
		fm, body, err := ExtractFrontMatter([]byte(src))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", src, err)
		}
		if fm.Format != "" || fm.Fields != nil {
			t.Fatalf("%q: unexpected front matter %+v", src, fm)
		}
		if !bytes.Equal(body, []byte(src)) {
			t.Fatalf("%q: body changed to %q", src, body)
		}
	}
}

func TestExtractFrontMatterDecodeErrorKeepsBody(t *testing.T) {
	t.Parallel()
	fm, body, err := ExtractFrontMatter([]byte("+++\ntitle = = broken\n+++\nBody\n"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !strings.Contains(err.Error(), "front matter toml") {
		t.Fatalf("unexpected error %v", err)
	}
	if fm.Format != FrontMatterTOML || fm.Raw != "title = = broken\n" {
		t.Fatalf("unexpected front matter %+v", fm)
	}
	if string(body) != "Body\n" {
		t.Fatalf("body=%q", body)
	}
}

func TestFrontMatterTitleIgnoresNonString(t *testing.T) {
	t.Parallel()
	fm, _, err := ExtractFrontMatter([]byte("---\ntitle: 42\n---\n"))
	if err != nil {
		t.Fatalf("ExtractFrontMatter: %v", err)
	}
	if fm.Title() != "" {
		t.Fatalf("expected empty title, got %q", fm.Title())
	}
}
