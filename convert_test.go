package mdhtml

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Reader: strings.NewReader("---\ntitle: T\n---\n# Hi\n*x*"),
		Writer: &out,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if out.String() != "<h1>Hi</h1><p><em>x</em></p>" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestConvertKeepsFrontMatterWhenAsked(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Reader:  strings.NewReader("---\ntitle: T\n---\n"),
		Writer:  &out,
		Options: []RenderOption{WithFrontMatter(false)},
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(out.String(), "<p>title: T</p>") {
		t.Fatalf("expected front matter in output, got %q", out.String())
	}
}

func TestConvertRequiresReaderAndWriter(t *testing.T) {
	t.Parallel()
	if err := Convert(ConvertRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Convert(ConvertRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConvertWriteError(t *testing.T) {
	t.Parallel()
	err := Convert(ConvertRequest{Reader: strings.NewReader("x"), Writer: failingWriter{}})
	if err == nil || !strings.Contains(err.Error(), "convert: write: disk full") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestConvertHTTP(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("# Remote\n1. a"))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := ConvertHTTP(context.Background(), HTTPConvertRequest{
		URL:     srv.URL + "/doc.md",
		Client:  srv.Client(),
		Writer:  &out,
		Options: []RenderOption{WithSourceMap(true)},
	})
	if err != nil {
		t.Fatalf("ConvertHTTP: %v", err)
	}
	want := `<h1 class="line" data-line="0">Remote</h1>` +
		`<ol start="1" style="list-style-position: inside; padding-left: 1.5em;"><li>a</li></ol>`
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}

	err = ConvertHTTP(context.Background(), HTTPConvertRequest{URL: srv.URL + "/missing", Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestConvertHTTPRejectsBadRequests(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	cases := []HTTPConvertRequest{
		{Writer: &out},
		{URL: "http://example.invalid"},
		{URL: "ftp://example.invalid/doc.md", Writer: &out},
		{URL: "file:///etc/passwd", Writer: &out},
	}
	for _, req := range cases {
		if err := ConvertHTTP(context.Background(), req); err == nil {
			t.Fatalf("expected error for %+v", req)
		}
	}
}

func TestConvertHTTPHonorsContext(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ConvertHTTP(ctx, HTTPConvertRequest{URL: srv.URL, Writer: &bytes.Buffer{}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
