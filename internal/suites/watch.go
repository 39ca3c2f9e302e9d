package suites

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch monitors dir and its subdirectories and calls onChange with the reloaded suites each time a
// file matching pattern is written, created, removed or renamed. Directories
// created later are watched as they appear, and removing or renaming a
// watched directory triggers a reload as well. It runs until ctx is cancelled.
//
// If a reload fails the error is logged and onChange is not called, so the
// caller keeps its previous suites.
func (l *Loader) Watch(ctx context.Context, dir, pattern string, log logrus.FieldLogger, onChange func([]Suite)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool)
	if err := addTree(watcher, dir, watched); err != nil {
		return err
	}

	log = log.WithField("dir", dir)
	log.Info("watching suites for changes")

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&relevant == 0 {
				continue
			}

			switch {
			case event.Op&fsnotify.Create != 0 && isDir(event.Name):
				if err := addTree(watcher, event.Name, watched); err != nil {
					log.WithError(err).WithField("path", event.Name).Error("cannot watch new directory")
				}
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && watched[event.Name]:
				forgetTree(watcher, event.Name, watched)
			default:
				if ok, _ := filepath.Match(pattern, filepath.Base(event.Name)); !ok {
					continue
				}
			}

			loaded, err := l.LoadDir(dir, pattern)
			if err != nil {
				log.WithError(err).Error("suite reload failed, keeping previous suites")
				continue
			}

			log.WithField("file", event.Name).Info("suites reloaded")
			onChange(loaded)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Error("watcher error")
		}
	}
}

// addTree watches root and every directory below it.
func addTree(watcher *fsnotify.Watcher, root string, watched map[string]bool) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		if watched[path] {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return err
		}
		watched[path] = true
		return nil
	})
}

// forgetTree drops root and the directories below it. The kernel watches of
// a removed directory are already gone, so Remove errors are ignored.
func forgetTree(watcher *fsnotify.Watcher, root string, watched map[string]bool) {
	prefix := root + string(filepath.Separator)
	for path := range watched {
		if path == root || strings.HasPrefix(path, prefix) {
			_ = watcher.Remove(path)
			delete(watched, path)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
