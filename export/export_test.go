package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentScreen(t *testing.T) {
	doc, err := Document(DocumentRequest{Fragment: "<h1>Hello</h1><p>x</p>"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">"))
	assert.Contains(t, doc, "<title>Hello</title>")
	assert.Contains(t, doc, "<body>\n<h1>Hello</h1><p>x</p>\n</body>")
	assert.Contains(t, doc, "max-width: 800px")
	assert.NotContains(t, doc, "@page")
	assert.NotContains(t, doc, "window.print")
}

func TestDocumentPrint(t *testing.T) {
	doc, err := Document(DocumentRequest{Fragment: "<p>x</p>", Mode: ModePrint})
	require.NoError(t, err)
	assert.Contains(t, doc, "@page { size: A4; margin: 0; }")
	assert.Contains(t, doc, "page-break-inside: avoid")
	assert.Contains(t, doc, "window.print()")
	assert.Contains(t, doc, "<title>"+DefaultTitle+"</title>")
}

func TestDocumentEscapesTitle(t *testing.T) {
	doc, err := Document(DocumentRequest{Fragment: "<p>x</p>", Title: "a < b & \"c\""})
	require.NoError(t, err)
	assert.Contains(t, doc, "<title>a &lt; b &amp; &#34;c&#34;</title>")
}

func TestDocumentUnknownMode(t *testing.T) {
	_, err := Document(DocumentRequest{Mode: Mode(9)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mode(9)")
}

func TestTitle(t *testing.T) {
	cases := []struct {
		fragment string
		want     string
	}{
		{"<p>no heading</p>", DefaultTitle},
		{"", DefaultTitle},
		{"<p>x</p><h2>Second <em>level</em></h2><h1>A</h1>", "Second level"},
		{"<h3 class=\"line\" data-line=\"4\">  Spaced\n out </h3>", "Spaced out"},
		{"<h1></h1><h2>Fallback</h2>", "Fallback"},
		{"<h1>a &amp; b</h1>", "a & b"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Title(tc.fragment), tc.fragment)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "screen", ModeScreen.String())
	assert.Equal(t, "print", ModePrint.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", DefaultFilename)
	require.NoError(t, WriteFile(path, "<!DOCTYPE html>"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE html>", string(data))

	require.Error(t, WriteFile("  ", "x"))
}
