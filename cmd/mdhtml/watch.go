package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// watchPath returns the local file a --watch run follows.
func watchPath(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one input file, got %d", len(args))
	}
	raw := strings.TrimSpace(args[0])
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "file":
			return normalizePath(fileURLPath(u)), nil
		case "http", "https":
			return "", fmt.Errorf("cannot watch %s", raw)
		}
	}
	return normalizePath(raw), nil
}

// watchFile calls render once and again after every write to path until
// ctx is done. The parent directory is watched so editors that replace the
// file on save are followed.
func watchFile(ctx context.Context, path string, logger *slog.Logger, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	if err := render(); err != nil {
		logger.Error("render failed", "path", path, "err", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("input changed", "path", path, "op", ev.Op.String())
			if err := render(); err != nil {
				logger.Error("render failed", "path", path, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
