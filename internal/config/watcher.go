package config

import (
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/mvcore/internal/logging"
)

// DefaultDebounce is how long the Watcher waits after the last change before
// reloading.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives the result of every reload. Exactly one of cfg and err
// is non-nil.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a configuration file when it changes. It watches the
// file's directory so that editors replacing the file are noticed.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	log      *logging.Logger

	fsw *fsnotify.Watcher

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
	reloading atomic.Bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(l *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWatcher starts watching path. onReload is called from the watcher's
// goroutine and may call Close.
func NewWatcher(path string, onReload ReloadFunc, opts ...WatcherOption) (*Watcher, error) {
	if onReload == nil {
		return nil, errors.New("config: nil reload func")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		onReload: onReload,
		log:      logging.Nop(),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.WithComponent("config-watcher").WithField("path", abs)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and waits for the watcher goroutine to exit. No
// reload callback starts after Close returns. While a callback is running,
// Close does not wait for it to finish, so the callback itself can call Close.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		if !w.reloading.Load() {
			w.wg.Wait()
		}
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			select {
			case <-w.closeCh:
				return
			default:
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn("reload failed", "error", err)
			} else {
				w.log.Info("config reloaded")
			}
			w.reloading.Store(true)
			w.onReload(cfg, err)
			w.reloading.Store(false)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
