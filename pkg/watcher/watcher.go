package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/olimci/cactus/pkg/utils/set"
)

// Event is a debounced batch of changes to watched files.
type Event struct {
	Reason string
	Paths  []string
}

// Watcher reports changes to a fixed list of files. It watches their parent
// directories so files replaced by rename (as editors and AtomicWrite do) stay
// watched.
type Watcher struct {
	Events chan Event
	Errors chan error

	watcher  *fsnotify.Watcher
	debounce time.Duration
	files    *set.Set[string]
}

func New(debounce time.Duration, files ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	watched := set.New[string]()
	dirs := set.New[string]()
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		watched.Add(abs)

		if dir := filepath.Dir(abs); !dirs.HasAdd(dir) {
			if err := w.Add(dir); err != nil {
				_ = w.Close()
				return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
	}

	return &Watcher{
		Events:   make(chan Event, 16),
		Errors:   make(chan error, 16),
		watcher:  w,
		debounce: debounce,
		files:    watched,
	}, nil
}

// Start runs the event loop until ctx is done.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		pending = set.New[string]()
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if !w.files.Has(filepath.Clean(ev.Name)) {
				continue
			}

			pending.Add(ev.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil

			lazySend(w.Events, Event{
				Reason: fmt.Sprintf("file change (%s quiet)", w.debounce),
				Paths:  set.Sorted(pending),
			})
			pending.Clear()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			lazySend(w.Errors, fmt.Errorf("watch error: %w", err))
		}
	}
}

// lazySend drops v when nobody is keeping up with ch.
func lazySend[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}
