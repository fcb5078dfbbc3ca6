package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"gridlayout"
)

// Watcher reports writes to a set of files on a channel, so a host can
// hot-reload its config or layout definition. Editors replace files in
// various ways, so both Write and Create events count as a change.
type Watcher struct {
	Events chan string // absolute paths of changed files

	fsw   *fsnotify.Watcher
	watch map[string]bool
}

// Watch starts watching the given files. The parent directories are
// registered rather than the files themselves, so atomic-rename saves
// keep working.
func Watch(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		Events: make(chan string, 8),
		fsw:    fsw,
		watch:  make(map[string]bool),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.watch[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				close(w.Events)
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.watch[abs] {
				continue
			}
			gridlayout.Logger().Debug("file changed", "path", abs)
			select {
			case w.Events <- abs:
			default:
				// Channel full: the host is behind, drop the event. It
				// will reload on the next change anyway.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				close(w.Events)
				return
			}
			gridlayout.Logger().Warn("watch error", "err", err)
		}
	}
}

// Close stops the watcher. Events is closed once the internal loop
// drains.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
