// Package watch invalidates cached graphs when a file-backed database
// changes on disk.
//
// A reachability cache only stays coherent if every mutation is routed
// through an invalidation entry point. Hosts that own all writes call the
// cache directly; for file-backed sources (SQLite) mutated by other
// processes, Watcher closes the gap by mapping filesystem events on the
// database file to Invalidate calls.
package watch

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/reach"
)

// Invalidator is the slice of the cache a Watcher drives. Both cache.Cache
// and cache.Shared satisfy it; with the unshared cache the host must keep
// queries and watcher events on one goroutine.
type Invalidator interface {
	Invalidate(src reach.Source)
}

// Watcher maps filesystem events to cache invalidations.
type Watcher struct {
	fs  *fsnotify.Watcher
	inv Invalidator

	mu      sync.Mutex
	sources map[string]reach.Source // absolute-as-registered path → source

	closeOnce sync.Once
	done      chan struct{}
}

// New starts a Watcher driving inv. Close releases it.
func New(inv Invalidator) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:      fs,
		inv:     inv,
		sources: make(map[string]reach.Source),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Add registers a database file path for src. Any write, create, rename,
// or remove event on the path drops src's cached graph. Registering a new
// source for an already-watched path replaces the old one.
func (w *Watcher) Add(path string, src reach.Source) error {
	w.mu.Lock()
	w.sources[path] = src
	w.mu.Unlock()
	return w.fs.Add(path)
}

// Remove stops watching a path.
func (w *Watcher) Remove(path string) error {
	w.mu.Lock()
	delete(w.sources, path)
	w.mu.Unlock()
	return w.fs.Remove(path)
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.mu.Lock()
			src := w.sources[ev.Name]
			w.mu.Unlock()
			if src != nil {
				w.inv.Invalidate(src)
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Watch errors are not cache-coherence events; the next
			// mutation either arrives or the host re-registers the path.
		}
	}
}
