package mdhtml

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
)

func TestRenderTestdataGolden(t *testing.T) {
	root := "testdata"
	paths := markdownSamples(t, root)
	boring, ok := ThemeByName("boring")
	if !ok {
		t.Fatalf("boring theme missing")
	}
	for _, path := range paths {
		path := path
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			tokens := Parse(string(src))
			if err := CheckNesting(tokens); err != nil {
				t.Fatalf("check nesting: %v", err)
			}

			htmlPath := strings.TrimSuffix(path, ".md") + ".html"
			want, err := os.ReadFile(htmlPath)
			if err != nil {
				t.Fatalf("read golden %s: %v", htmlPath, err)
			}
			if got := Render(tokens); got != string(want) {
				t.Fatalf("html mismatch for %s\n---want---\n%s\n---got---\n%s", htmlPath, want, got)
			}

			widths, err := goldenWidthsForFile(root, path)
			if err != nil {
				t.Fatalf("golden widths %s: %v", path, err)
			}
			for _, width := range widths {
				goldenPath := goldenStreamPath(path, width)
				want, err := os.ReadFile(goldenPath)
				if err != nil {
					t.Fatalf("read golden %s: %v", goldenPath, err)
				}
				var out bytes.Buffer
				if err := RenderTerminal(&out, tokens, TerminalOptions{Width: width, Theme: boring}); err != nil {
					t.Fatalf("render terminal %s: %v", path, err)
				}
				if !bytes.Equal(out.Bytes(), want) {
					t.Fatalf("terminal mismatch for %s\n---want---\n%s\n---got---\n%s", goldenPath, want, out.Bytes())
				}
			}
		})
	}
}

func markdownSamples(t testing.TB, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		t.Fatalf("no markdown files found under %s", root)
	}
	return paths
}

func goldenStreamPath(mdPath string, width int) string {
	return fmt.Sprintf("%s.w%d.golden", strings.TrimSuffix(mdPath, ".md"), width)
}

func goldenWidthsForFile(root, mdPath string) ([]int, error) {
	base := strings.TrimSuffix(filepath.Base(mdPath), ".md")
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(mdPath), base+".w*.golden"))
	if err != nil {
		return nil, err
	}
	var widths []int
	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), ".golden")
		idx := strings.LastIndex(name, ".w")
		if idx == -1 || name[:idx] != base {
			continue
		}
		width, err := strconv.Atoi(name[idx+2:])
		if err != nil || width <= 0 {
			continue
		}
		widths = append(widths, width)
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no terminal goldens for %s under %s", mdPath, root)
	}
	sort.Ints(widths)
	return widths, nil
}
