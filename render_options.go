package mdhtml

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	escapeHTML      bool
	highlightStyle  string
	sourceMap       bool
	keepFrontMatter bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEscapeHTML escapes <, >, & and quotes in text content, fence bodies
// and table cells. Off by default: raw source text passes through.
func WithEscapeHTML(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.escapeHTML = enabled
	}
}

// WithHighlight enables syntax highlighting of fenced code with the named
// chroma style. An empty name disables highlighting.
func WithHighlight(style string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.highlightStyle = style
	}
}

// WithSourceMap renders heading attributes (class="line" data-line="N") so
// a preview pane can be scrolled in sync with the source.
func WithSourceMap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.sourceMap = enabled
	}
}

// WithFrontMatter controls whether Convert strips a leading front matter
// block before parsing. Stripping is the default.
func WithFrontMatter(strip bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.keepFrontMatter = !strip
	}
}
