package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event reports that the file holding Key changed on disk.
type Event struct {
	Key string
	Op  fsnotify.Op
}

const watchDelay = 150 * time.Millisecond

// Watch emits an Event whenever one of keys is written, renamed into place, or
// removed under the base path. Bursts are coalesced per key. The returned
// channel closes when ctx is done.
func (p *Disk) Watch(ctx context.Context, keys ...string) (<-chan Event, error) {
	if len(keys) == 0 {
		return nil, errors.New("store: watch needs at least one key")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: new watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	events := make(chan Event, 16)
	throttle := newEventThrottle(watchDelay)

	send := func(ev Event) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(events)
		defer watcher.Close()
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(ev.Name)
				if filepath.Dir(ev.Name) != filepath.Clean(p.basePath) || !wanted[key] {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(Event{Key: key, Op: ev.Op}, send)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("watch error", "err", err)
			}
		}
	}()

	return events, nil
}

type eventThrottle struct {
	delay   time.Duration
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]Event
	order   []string
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]Event),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if prev, ok := t.pending[ev.Key]; ok {
		ev.Op |= prev.Op
	} else {
		t.order = append(t.order, ev.Key)
	}
	t.pending[ev.Key] = ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() { t.flush(send) })
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	batch := make([]Event, 0, len(t.order))
	for _, k := range t.order {
		batch = append(batch, t.pending[k])
	}
	t.pending = make(map[string]Event)
	t.order = nil
	t.timer = nil
	t.mu.Unlock()

	for _, ev := range batch {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
