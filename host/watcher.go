// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arcane-engine/arcane"
)

// reloadDebounce is the quiet period after the last filesystem event
// before reload_needed is set — an editor's save is often several
// back-to-back writes (temp file, rename, chmod), and reloading on the
// first of them would type-check a half-written file.
const reloadDebounce = 200 * time.Millisecond

// watcher debounces OS filesystem notifications under a script's source
// directory into a single atomic reload flag the frame loop polls once
// per frame (step 3), rather than acting on fsnotify events directly
// from whatever goroutine fsnotify delivers them on.
type watcher struct {
	fsw    *fsnotify.Watcher
	needed atomic.Bool
	done   chan struct{}
}

// newWatcher watches dir for changes. Only dir itself is added to the
// fsnotify watcher; its subdirectories are not watched.
func newWatcher(dir string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &watcher{fsw: fsw, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *watcher) run() {
	var timer *time.Timer
	fire := make(chan struct{})
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			arcane.Logger().Warn("host: file watcher error", "err", err)
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.AfterFunc(reloadDebounce, func() { fire <- struct{}{} })
			} else {
				timer.Reset(reloadDebounce)
			}
		case <-fire:
			w.needed.Store(true)
			timer = nil
		}
	}
}

// reloadNeeded reports and clears the debounced reload flag.
func (w *watcher) reloadNeeded() bool {
	return w.needed.CompareAndSwap(true, false)
}

func (w *watcher) stop() {
	close(w.done)
	w.fsw.Close()
}
