// Package watch reports debounced changes to a fixed set of files.
//
// The parent directory of every file is watched rather than the file itself,
// so editors that save by rename-and-replace are still observed.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce applies when Options.Debounce is not positive.
const DefaultDebounce = 250 * time.Millisecond

// Options selects the watched files.
type Options struct {
	Files    []string
	Debounce time.Duration
}

// Run blocks until ctx is cancelled, calling onChange with the sorted
// absolute paths that changed during each quiet period.
func Run(ctx context.Context, opts Options, onChange func(changed []string)) error {
	targets := make(map[string]bool, len(opts.Files))
	dirs := make(map[string]bool)
	for _, f := range opts.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		abs = filepath.Clean(abs)
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	if len(targets) == 0 {
		return fmt.Errorf("watch: no files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	deb := newDebouncer(opts.Debounce)
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(event.Name)
			if !targets[path] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			deb.touch(path)
		case <-deb.C():
			if changed := deb.fire(); len(changed) > 0 {
				onChange(changed)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}

// debouncer collects paths until no event has arrived for delay.
type debouncer struct {
	delay   time.Duration
	timer   *time.Timer
	pending bool
	paths   map[string]bool
}

func newDebouncer(delay time.Duration) *debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	return &debouncer{delay: delay, timer: timer, paths: map[string]bool{}}
}

func (d *debouncer) C() <-chan time.Time { return d.timer.C }

// touch records path and restarts the quiet period.
func (d *debouncer) touch(path string) {
	if path != "" {
		d.paths[path] = true
	}
	if d.pending && !d.timer.Stop() {
		select {
		case <-d.timer.C:
		default:
		}
	}
	d.timer.Reset(d.delay)
	d.pending = true
}

// fire drains the collected paths, sorted. It returns nil when nothing is pending.
func (d *debouncer) fire() []string {
	if !d.pending {
		return nil
	}
	d.pending = false
	changed := make([]string, 0, len(d.paths))
	for p := range d.paths {
		changed = append(changed, p)
	}
	sort.Strings(changed)
	d.paths = map[string]bool{}
	return changed
}

func (d *debouncer) stop() { d.timer.Stop() }
