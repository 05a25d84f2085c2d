package profile

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/actionmap/internal/logging"
)

// DefaultDebounce is the quiet period after the last file event before
// a reload fires. Editors write in bursts; coalescing avoids loading
// half-written documents.
const DefaultDebounce = 200 * time.Millisecond

// Reload carries the result of one reload attempt. Err is non-nil when
// the changed document failed to load; Profile is nil in that case and
// the caller should keep its previous profile.
type Reload struct {
	Profile *Profile
	Err     error
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce interval. Non-positive values are
// ignored.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher reloads a profile document whenever the file changes on
// disk. Editors often replace files by rename, so the watch is placed
// on the containing directory and events are filtered by name.
type Watcher struct {
	loader   *Loader
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	reloads  chan Reload
	logger   *logging.Logger

	closeCh   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher starts watching path and delivers reload results on the
// Reloads channel. A nil logger disables diagnostics.
func NewWatcher(loader *Loader, path string, logger *logging.Logger, opts ...WatcherOption) (*Watcher, error) {
	if logger == nil {
		logger = logging.NullLogger
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		loader:   loader,
		path:     abs,
		debounce: DefaultDebounce,
		fsw:      fsw,
		reloads:  make(chan Reload, 4),
		logger:   logger.WithComponent("watcher"),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Reloads returns the channel on which reload results arrive.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// loop coalesces file events and triggers reloads after the debounce
// interval passes without further changes.
func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("profile change detected: %s", ev.Op)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timerC:
			timer = nil
			timerC = nil
			p, err := w.loader.LoadFile(w.path)
			w.send(Reload{Profile: p, Err: err})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

// relevant reports whether the event concerns the watched file with an
// operation that changes its content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// send delivers a reload without blocking. Results are dropped when
// the consumer lags; the next change produces a fresh one.
func (w *Watcher) send(r Reload) {
	select {
	case w.reloads <- r:
	default:
		w.logger.Warn("reload channel full, dropping result")
	}
}

// Close stops the watcher and closes the Reloads channel. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.wg.Wait()
		close(w.reloads)
		err = w.fsw.Close()
	})
	return err
}
