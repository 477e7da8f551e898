// Package watch rebuilds a presentation whenever its deck file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/benjaminschreck/go-deck/pkg/deck"
)

// DefaultDebounce is used when a Watcher is created with a zero debounce.
const DefaultDebounce = 250 * time.Millisecond

// BuildFunc produces the output for the watched deck. Its error is logged
// and does not stop the watcher.
type BuildFunc func() error

// Watcher monitors one deck file. The parent directory is watched rather
// than the file itself so that editors which save by renaming a temp file
// over the original keep triggering rebuilds.
type Watcher struct {
	Path     string
	Debounce time.Duration

	watcher *fsnotify.Watcher
}

// New creates a watcher for the deck file at path.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{Path: abs, Debounce: debounce, watcher: fw}, nil
}

// Run builds once, then again after every burst of changes to the deck
// file, until ctx is cancelled. It closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context, build BuildFunc) error {
	defer w.watcher.Close()

	log := deck.WithField("deck", w.Path)
	w.rebuild(log, build)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug("change detected: %s", event.Op)
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			log.Warn("watch error: %v", err)

		case <-fire:
			fire = nil
			w.rebuild(log, build)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.Path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) rebuild(log *deck.Logger, build BuildFunc) {
	start := time.Now()
	if err := build(); err != nil {
		log.Error("rebuild failed: %v", err)
		return
	}
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("rebuilt")
}
