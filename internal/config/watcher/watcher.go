// Package watcher watches configuration files for changes.
//
// Events come from fsnotify. Because most editors replace files on save
// (write to temp, rename over), the watcher registers the parent directory
// of each file and filters events down to the registered paths, and it
// debounces per path so a save that produces several syscalls triggers one
// reload.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher is closed")

// Op is the file operation that triggered an event.
type Op uint8

const (
	// OpWrite indicates the file was modified.
	OpWrite Op = iota
	// OpCreate indicates the file was created.
	OpCreate
	// OpRemove indicates the file was deleted.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event is a change to a watched file.
type Event struct {
	// Path is the watched file's path as it was registered.
	Path string

	// Op is the operation observed.
	Op Op

	// Time is when the debounced event fired.
	Time time.Time
}

// Handler is called when a watched file changes.
type Handler func(event Event)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the per-path debounce window.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher watches individual files via their parent directories.
type Watcher struct {
	mu sync.Mutex

	fsw *fsnotify.Watcher

	// files maps the absolute path to the path the caller registered.
	files map[string]string

	// dirs tracks directories already added to fsnotify.
	dirs map[string]bool

	handlers []Handler
	debounce time.Duration
	pending  map[string]*time.Timer

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher. Call Close to release it.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]string),
		dirs:     make(map[string]bool),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// OnChange registers a handler for file changes. Handlers run on the
// debounce timer goroutine and should hand work off quickly.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Watch starts watching the file at path. The file itself may not exist
// yet; its parent directory must. Watching the same path twice is a no-op.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if _, ok := w.files[abs]; ok {
		return nil
	}

	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[abs] = path
	return nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for _, timer := range w.pending {
		timer.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// fsnotify errors are not actionable for single-file watches;
			// the next successful event re-synchronizes state.
		}
	}
}

func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	abs := filepath.Clean(fsEvent.Name)

	w.mu.Lock()
	registered, ok := w.files[abs]
	if !ok || w.closed {
		w.mu.Unlock()
		return
	}

	op, ok := convertOp(fsEvent.Op)
	if !ok {
		w.mu.Unlock()
		return
	}

	// Restart the debounce window for this path; the last op wins.
	if timer, exists := w.pending[abs]; exists {
		timer.Stop()
	}
	w.pending[abs] = time.AfterFunc(w.debounce, func() {
		w.fire(abs, Event{Path: registered, Op: op, Time: time.Now()})
	})
	w.mu.Unlock()
}

func (w *Watcher) fire(abs string, event Event) {
	w.mu.Lock()
	delete(w.pending, abs)
	if w.closed {
		w.mu.Unlock()
		return
	}
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}

func convertOp(fsOp fsnotify.Op) (Op, bool) {
	switch {
	case fsOp.Has(fsnotify.Write):
		return OpWrite, true
	case fsOp.Has(fsnotify.Create):
		return OpCreate, true
	case fsOp.Has(fsnotify.Remove):
		return OpRemove, true
	case fsOp.Has(fsnotify.Rename):
		return OpRename, true
	default:
		return 0, false
	}
}
