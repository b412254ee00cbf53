package mdhtml

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FrontMatterFormat names the syntax of a front matter block.
type FrontMatterFormat string

const (
	FrontMatterYAML FrontMatterFormat = "yaml"
	FrontMatterTOML FrontMatterFormat = "toml"
	FrontMatterJSON FrontMatterFormat = "json"
)

// FrontMatter is the metadata block found at the start of a document.
type FrontMatter struct {
	Format FrontMatterFormat
	Raw    string
	Fields map[string]any
}

// Title returns the string "title" field, if any.
func (fm FrontMatter) Title() string {
	if title, ok := fm.Fields["title"].(string); ok {
		return title
	}
	return ""
}

// ExtractFrontMatter splits a leading ---, +++ or ;;; delimited block off
// src. The block is only recognized when its first line looks like
// metadata and a closing delimiter exists; otherwise src is returned
// unchanged with a zero FrontMatter. A decoding error is returned together
// with the stripped body.
func ExtractFrontMatter(src []byte) (FrontMatter, []byte, error) {
	format, raw, body, ok := splitFrontMatter(src)
	if !ok {
		return FrontMatter{}, src, nil
	}
	fm := FrontMatter{Format: format, Raw: string(raw)}
	var err error
	switch format {
	case FrontMatterYAML:
		err = yaml.Unmarshal(raw, &fm.Fields)
	case FrontMatterTOML:
		err = toml.Unmarshal(raw, &fm.Fields)
	case FrontMatterJSON:
		err = json.Unmarshal(raw, &fm.Fields)
	}
	if err != nil {
		return fm, body, fmt.Errorf("front matter %s: %w", format, err)
	}
	return fm, body, nil
}

func stripFrontMatter(src []byte) []byte {
	if _, _, body, ok := splitFrontMatter(src); ok {
		return body
	}
	return src
}

func splitFrontMatter(src []byte) (FrontMatterFormat, []byte, []byte, bool) {
	openLine, openNext := nextLine(src, 0)
	format, delim, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok || openNext >= len(src) {
		return "", nil, nil, false
	}
	secondLine, _ := nextLine(src, openNext)
	if !frontMatterMetadataLikely(secondLine) {
		return "", nil, nil, false
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found {
		return "", nil, nil, false
	}
	return format, src[openNext:closeStart], src[closeNext:], true
}

// nextLine returns the line starting at start without its line ending, and
// the offset just past it.
func nextLine(src []byte, start int) ([]byte, int) {
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) (FrontMatterFormat, []byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return FrontMatterYAML, []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return FrontMatterTOML, []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return FrontMatterJSON, []byte(";;;"), true
	default:
		return "", nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the offsets of the start of the
// closing delimiter line and of the byte after it.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
