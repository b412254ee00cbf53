package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdhtml"
	"pkt.systems/mdhtml/export"
	"pkt.systems/mdhtml/internal/config"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

const (
	formatHTML     = "html"
	formatDocument = "document"
	formatPrint    = "print"
	formatANSI     = "ansi"
	formatTokens   = "tokens"
)

var formats = []string{formatHTML, formatDocument, formatPrint, formatANSI, formatTokens}

var errUsage = errors.New("usage")

func init() {
	version.SetDefaultModule("pkt.systems/mdhtml")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		listThemes  bool
		showVersion bool
		configPath  string
	)
	flags := pflag.NewFlagSet("mdhtml", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("format", "f", formatHTML, "Output format: "+strings.Join(formats, "|"))
	flags.StringP("output", "o", "", "Output file instead of stdout")
	flags.StringP("theme", "t", defaultThemeName, "Theme name for ansi output")
	flags.IntP("width", "w", 0, "Wrap width for ansi output (0 uses terminal width if available)")
	flags.Bool("escape-html", false, "Escape HTML special characters in text")
	flags.String("highlight", "", "Chroma style for fenced code (empty disables)")
	flags.Bool("source-map", false, "Render data-line attributes on headings")
	flags.Bool("front-matter", true, "Strip a leading front matter block")
	flags.Bool("check", false, "Fail when the token stream is unbalanced")
	flags.Bool("watch", false, "Re-render a single input file whenever it changes")
	flags.BoolP("verbose", "v", false, "Log diagnostics to stderr")
	flags.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/mdhtml/config.yaml)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdhtml [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if listThemes {
		printThemes(stdout)
		return 0
	}

	cfg, err := config.Load(config.LoadRequest{Flags: flags, Path: configPath})
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	logger := newLogger(stderr, cfg.Verbose)

	conv, err := newConverter(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		if errors.Is(err, errUsage) {
			printThemes(stderr)
		}
		return 2
	}

	inputs := flags.Args()
	if cfg.Watch {
		path, err := watchPath(inputs)
		if err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return 2
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = watchFile(ctx, path, logger, func() error {
			return conv.convertFile(path, stdout)
		})
		if err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return 1
		}
		return 0
	}

	reader, closer, err := openInputs(inputs)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	if err := conv.writeTo(cfg.Output, data, stdout); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type converter struct {
	format    string
	output    string
	theme     mdhtml.Theme
	width     int
	highlight string
	check     bool
	strip     bool
	opts      []mdhtml.RenderOption
	logger    *slog.Logger
}

func newConverter(cfg *config.Config, logger *slog.Logger) (*converter, error) {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if !validFormat(format) {
		return nil, fmt.Errorf("unknown format %q (want %s)", cfg.Format, strings.Join(formats, "|"))
	}
	if format == formatHTML && strings.HasSuffix(strings.ToLower(cfg.Output), ".html") {
		logger.Warn("output ends with .html; writing a full document", "output", cfg.Output)
		format = formatDocument
	}
	themeName := cfg.Theme
	if themeName == "" {
		themeName = defaultThemeName
	}
	theme, ok := mdhtml.ThemeByName(themeName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown theme %q", errUsage, themeName)
	}
	return &converter{
		format:    format,
		output:    cfg.Output,
		theme:     theme,
		width:     cfg.Width,
		highlight: cfg.Highlight,
		check:     cfg.Check,
		strip:     cfg.FrontMatter,
		opts: []mdhtml.RenderOption{
			mdhtml.WithEscapeHTML(cfg.EscapeHTML),
			mdhtml.WithHighlight(cfg.Highlight),
			mdhtml.WithSourceMap(cfg.SourceMap),
		},
		logger: logger,
	}, nil
}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

func (c *converter) convertFile(path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return c.writeTo(c.output, data, stdout)
}

func (c *converter) writeTo(path string, data []byte, stdout io.Writer) error {
	if strings.TrimSpace(path) != "" && (c.format == formatDocument || c.format == formatPrint) {
		var doc strings.Builder
		if err := c.convert(data, &doc); err != nil {
			return err
		}
		return export.WriteFile(normalizePath(path), doc.String())
	}
	writer, closeOut, err := resolveOutput(path, stdout)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	return c.convert(data, writer)
}

func (c *converter) convert(data []byte, w io.Writer) error {
	if err := mdhtml.ValidateInput(data); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	var fm mdhtml.FrontMatter
	body := data
	if c.strip {
		var err error
		fm, body, err = mdhtml.ExtractFrontMatter(data)
		if err != nil {
			c.logger.Warn("front matter not decoded", "format", fm.Format, "err", err)
		}
	}
	tokens := mdhtml.Parse(string(body))
	c.logger.Debug("parsed", "bytes", len(data), "tokens", len(tokens), "format", c.format)
	if c.check {
		if err := mdhtml.CheckNesting(tokens); err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	switch c.format {
	case formatTokens:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(tokens); err != nil {
			return fmt.Errorf("encode tokens: %w", err)
		}
		return nil
	case formatANSI:
		return mdhtml.RenderTerminal(w, tokens, mdhtml.TerminalOptions{
			Width:     resolveWidth(c.width, w),
			Theme:     c.theme,
			Highlight: c.highlight,
		})
	}

	fragment := mdhtml.Render(tokens, c.opts...)
	if c.format == formatHTML {
		if _, err := io.WriteString(w, fragment); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}
	mode := export.ModeScreen
	if c.format == formatPrint {
		mode = export.ModePrint
	}
	doc, err := export.Document(export.DocumentRequest{
		Fragment: fragment,
		Title:    fm.Title(),
		Mode:     mode,
	})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func printThemes(w io.Writer) {
	names := mdhtml.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

// resolveWidth uses the terminal width only when writing to a terminal.
func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if !isTerminal(w) {
		return 0
	}
	return terminalWidth(w.(*os.File), defaultWidth)
}

func terminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

// openInputs concatenates files, file:// URLs and http(s) URLs, or returns
// stdin when args is empty.
func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := fileURLPath(u)
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func fileURLPath(u *url.URL) string {
	path := u.Path
	if path == "" {
		path = u.Host
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
