package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// LocateOutput finds the tree file the external builder actually wrote.
// MEGA-CC may write to a slightly different filename than requested, so
// the expected path and one fallback (same base name, alternate
// extension) are both candidates. The builder also flushes its output
// asynchronously, so absent files are waited on — a watch on the output
// directory bounded by the settle window — before giving up with
// ErrOutputMissing.
func (r *Runner) LocateOutput(ctx context.Context, expected string) (string, error) {
	candidates := []string{expected}
	if fb := fallbackPath(expected, r.FallbackExt); fb != expected {
		candidates = append(candidates, fb)
	}

	if p, ok := firstExisting(candidates); ok {
		return p, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// No watch support: degrade to the plain settle sleep.
		return r.locateAfterSleep(ctx, candidates)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(expected)); err != nil {
		return r.locateAfterSleep(ctx, candidates)
	}

	// The file may have appeared between the existence check and the
	// watch registration.
	if p, ok := firstExisting(candidates); ok {
		return p, nil
	}

	deadline := time.NewTimer(r.Settle)
	defer deadline.Stop()
	for {
		select {
		case <-watcher.Events:
			if p, ok := firstExisting(candidates); ok {
				return p, nil
			}
		case werr := <-watcher.Errors:
			r.log.Warn("output watch error", "error", werr)
		case <-deadline.C:
			if p, ok := firstExisting(candidates); ok {
				return p, nil
			}
			return "", fmt.Errorf("%w: checked %s", ErrOutputMissing, strings.Join(candidates, ", "))
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// locateAfterSleep is the watchless fallback: wait out the settle window
// once, then check.
func (r *Runner) locateAfterSleep(ctx context.Context, candidates []string) (string, error) {
	select {
	case <-time.After(r.Settle):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if p, ok := firstExisting(candidates); ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: checked %s", ErrOutputMissing, strings.Join(candidates, ", "))
}

func fallbackPath(expected, ext string) string {
	return strings.TrimSuffix(expected, filepath.Ext(expected)) + ext
}

func firstExisting(paths []string) (string, bool) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
