package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatchDebounce is the debounce window for watcher events. Editors
// usually emit several events for a single save.
const ConfigWatchDebounce = 300 * time.Millisecond

// ConfigWatchService watches the configuration file and signals when it
// changes. It watches the parent directory so that editors replacing the
// file by rename are still observed.
type ConfigWatchService struct {
	Started     bool
	Waiting     bool
	Path        string
	Events      chan struct{}
	Done        chan struct{}
	Mu          sync.Mutex
	Watcher     *fsnotify.Watcher
	LastRefresh time.Time
	logf        func(string, ...any)
}

// NewConfigWatchService creates a new ConfigWatchService.
func NewConfigWatchService(logf func(string, ...any)) *ConfigWatchService {
	return &ConfigWatchService{logf: logf}
}

// Start initialises the watcher for path and starts the background goroutine.
func (w *ConfigWatchService) Start(path string) (bool, error) {
	if w.Started || path == "" {
		return false, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return false, err
	}

	w.Started = true
	w.Watcher = watcher
	w.Path = filepath.Clean(path)
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes channels.
func (w *ConfigWatchService) Stop() {
	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false
	if w.Watcher != nil {
		_ = w.Watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *ConfigWatchService) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *ConfigWatchService) ResetWaiting() {
	w.Waiting = false
}

// ShouldReload checks debounce timing for watcher events.
func (w *ConfigWatchService) ShouldReload(now time.Time) bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	if !w.LastRefresh.IsZero() && now.Sub(w.LastRefresh) < ConfigWatchDebounce {
		return false
	}
	w.LastRefresh = now
	return true
}

// Signal notifies listeners of watcher activity.
func (w *ConfigWatchService) Signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// Matches reports whether an event name refers to the watched file.
func (w *ConfigWatchService) Matches(name string) bool {
	return name != "" && filepath.Clean(name) == w.Path
}

func (w *ConfigWatchService) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.Matches(event.Name) {
				continue
			}
			w.Signal()
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return
			}
			w.debugf("config watcher error: %v", err)
		}
	}
}

func (w *ConfigWatchService) debugf(format string, args ...any) {
	if w.logf != nil {
		w.logf(format, args...)
	}
}
