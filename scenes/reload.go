package scenes

import (
	"path/filepath"

	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
)

// Reloader re-applies a config override file whenever it changes on disk.
type Reloader struct {
	path    string
	watcher *config.Watcher
}

// NewReloader loads path once and starts watching its directory.
func NewReloader(path string) (*Reloader, error) {
	if err := config.LoadOverridesFile(path); err != nil {
		return nil, err
	}
	w, err := config.NewWatcher(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return &Reloader{path: path, watcher: w}, nil
}

// Changed drains pending watcher events and reports whether the override
// file was reloaded. Bad edits are logged and keep the previous values.
func (r *Reloader) Changed() bool {
	changed := false
	for {
		select {
		case name := <-r.watcher.Events:
			if filepath.Clean(name) != filepath.Clean(r.path) {
				continue
			}
			if err := config.LoadOverridesFile(r.path); err != nil {
				logger.Log.WithError(err).Warn("config reload failed")
				continue
			}
			logger.Log.WithField("file", r.path).Info("config reloaded")
			changed = true
		case err := <-r.watcher.Errors:
			logger.Log.WithError(err).Warn("config watcher error")
		default:
			return changed
		}
	}
}

func (r *Reloader) Close() error {
	return r.watcher.Close()
}
