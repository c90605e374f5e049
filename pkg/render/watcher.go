package render

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors fire bursts of writes per save; changes are collapsed until the
// directory has been quiet this long.
const reloadDebounce = 100 * time.Millisecond

// ShaderWatcher watches a shader directory for source changes. Filesystem
// events arrive on the watcher goroutine and are latched into a one-slot
// channel; the render loop polls ShouldReload once per frame.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	changed chan struct{}
}

// NewShaderWatcher watches dir for changes to shader source files.
func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	sw := &ShaderWatcher{
		watcher: fw,
		changed: make(chan struct{}, 1),
	}
	go sw.watch()

	return sw, nil
}

func (sw *ShaderWatcher) watch() {
	var settle <-chan time.Time

	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !isShaderSource(event.Name) {
				continue
			}
			settle = time.After(reloadDebounce)
		case <-settle:
			settle = nil
			select {
			case sw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher error", "error", err)
		}
	}
}

func isShaderSource(name string) bool {
	switch filepath.Ext(name) {
	case ".vert", ".frag", ".glsl":
		return true
	}
	return false
}

// ShouldReload reports whether shader sources have changed since the last
// call. It never blocks.
func (sw *ShaderWatcher) ShouldReload() bool {
	select {
	case <-sw.changed:
		return true
	default:
		return false
	}
}

// Close stops the watcher.
func (sw *ShaderWatcher) Close() error {
	return sw.watcher.Close()
}
