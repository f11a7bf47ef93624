package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ionut-t/vir/core"
)

// Watcher reloads the bindings whenever the config file is written. It
// watches the parent directory so that editors which save by renaming a
// temporary file are picked up too.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	bindings chan core.Bindings
	errors   chan error

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching path. The directory holding path must exist;
// the file itself may not exist yet.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(abs)
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		watcher:  fsw,
		bindings: make(chan core.Bindings, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Bindings delivers the reloaded table after every change. Only the latest
// table is kept if the receiver falls behind.
func (w *Watcher) Bindings() <-chan core.Bindings {
	return w.bindings
}

// Errors delivers reload and watch failures. The bindings are still sent,
// falling back to the defaults, when the file fails to parse.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) reload() {
	b, err := Load(w.path)
	if err != nil {
		log.Printf("config: reload of %s failed: %v", w.path, err)
		w.sendError(err)
	}

	// Drop a table nobody picked up yet in favour of the new one.
	select {
	case <-w.bindings:
	default:
	}
	select {
	case w.bindings <- b:
	case <-w.done:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		log.Printf("config: dropped watcher error: %v", err)
	}
}
