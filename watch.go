package silicon

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch runs the session once, then rebuilds it every time the session
// file changes, invoking fn with each result. It returns when ctx is
// cancelled. The watcher observes the containing directory because many
// editors replace files instead of writing them in place.
func Watch(ctx context.Context, path string, opts Options, fn func(*Result, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fn(Run(path, opts))

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			// coalesce bursts of editor events into one rebuild
			time.Sleep(100 * time.Millisecond)
			drain(watcher.Events)
			fn(Run(path, opts))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watch: %w", err))
		}
	}
}

func drain(events chan fsnotify.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}
