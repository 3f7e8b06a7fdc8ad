// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Route files are edited by the transit operator while kiosks run, so
// the catalog watches its source directories and reloads on change. A
// failed reload simply keeps the previous snapshot; the watcher never
// surfaces errors to the screens.

type watcher struct {
	fs     *fsnotify.Watcher
	done   chan struct{}
	closed chan struct{}
}

// Watch starts reloading the catalog whenever a backing file changes.
// Watching the parent directories rather than the files themselves
// survives editors that replace files by rename.
func (c *Catalog) Watch() error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := map[string]struct{}{}
	for _, p := range []string{c.sources.RoutesFile, c.sources.DestinationsFile, c.sources.GeometryFile} {
		if p == "" {
			continue
		}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			c.log.Warn("cannot watch route directory", "dir", dir, "error", err)
		}
	}

	w := &watcher{
		fs:     fs,
		done:   make(chan struct{}),
		closed: make(chan struct{}),
	}

	c.mu.Lock()
	c.watcher = w
	c.mu.Unlock()

	go c.watchLoop(w)
	return nil
}

// Close stops the watcher. Safe to call when Watch was never started.
func (c *Catalog) Close() error {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w == nil {
		return nil
	}
	close(w.done)
	err := w.fs.Close()
	<-w.closed
	return err
}

func (c *Catalog) watchLoop(w *watcher) {
	defer close(w.closed)

	relevant := map[string]struct{}{
		filepath.Clean(c.sources.RoutesFile):       {},
		filepath.Clean(c.sources.DestinationsFile): {},
		filepath.Clean(c.sources.GeometryFile):     {},
	}

	// Editors fire bursts of events per save; coalesce them with a
	// short debounce before reloading.
	const debounce = 250 * time.Millisecond
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if _, ours := relevant[filepath.Clean(ev.Name)]; !ours {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			c.log.Warn("route watcher error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			c.log.Info("route files changed, reloading catalog")
			c.Reload()
		}
	}
}
