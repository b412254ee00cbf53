package mdhtml

import (
	"fmt"
	"io"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// Convert reads the whole Markdown document from Reader and writes the HTML
// fragment to Writer. Input that is not valid UTF-8 or looks binary is
// rejected before anything is written.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("convert: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	cfg := newRenderConfig(req.Options)
	if !cfg.keepFrontMatter {
		src = stripFrontMatter(src)
	}
	out := Render(Parse(string(src)), req.Options...)
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("convert: write: %w", err)
	}
	return nil
}
