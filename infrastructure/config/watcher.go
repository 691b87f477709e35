package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
)

// ModelLoader reads and builds a model from a file
type ModelLoader func(path string) (*aggregates.Model, error)

// ModelWatcher reloads the model file when it changes and hands every model
// that builds successfully to the reload callback. Invalid files are logged
// and the active model stays in place.
type ModelWatcher struct {
	path     string
	load     ModelLoader
	onReload func(*aggregates.Model)
	onError  func(error)
	logger   *zap.Logger
	debounce time.Duration

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewModelWatcher creates a watcher for path. Call Start to begin watching.
func NewModelWatcher(path string, load ModelLoader, onReload func(*aggregates.Model), logger *zap.Logger) *ModelWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModelWatcher{
		path:     filepath.Clean(path),
		load:     load,
		onReload: onReload,
		onError:  func(error) {},
		logger:   logger.Named("model_watcher"),
		debounce: 200 * time.Millisecond,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// OnError registers a callback for failed reloads
func (w *ModelWatcher) OnError(fn func(error)) {
	w.onError = fn
}

// Start watches the directory holding the file. Watching the directory
// catches editors and deploy tools that replace the file by rename.
func (w *ModelWatcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.watcher = fsw
	go w.loop()

	w.logger.Info("Watching model file", zap.String("path", w.path))
	return nil
}

// Stop ends watching and waits for the loop to exit
func (w *ModelWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		if w.watcher != nil {
			<-w.done
		}
	})
}

func (w *ModelWatcher) loop() {
	defer close(w.done)
	defer w.watcher.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Model file changed", zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case <-w.stopCh:
			return
		}
	}
}

func (w *ModelWatcher) reload() {
	select {
	case <-w.stopCh:
		return
	default:
	}

	m, err := w.load(w.path)
	if err != nil {
		w.logger.Error("Model reload failed, keeping active model",
			zap.String("path", w.path),
			zap.Error(err),
		)
		w.onError(err)
		return
	}

	w.logger.Info("Model reloaded",
		zap.String("model", m.Name()),
		zap.Int("nodes", m.Graph().NodeCount()),
		zap.Int("edges", m.Graph().EdgeCount()),
	)
	w.onReload(m)
}
