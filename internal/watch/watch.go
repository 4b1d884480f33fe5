package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"buildprep/internal/logger"
)

// Options configures a Watcher.
type Options struct {
	Dirs     []string      // absolute directories to watch recursively
	Ignore   []string      // absolute paths whose events are dropped, e.g. the output directory
	Debounce time.Duration // quiet period before Run is called
	Run      func(ctx context.Context) error
}

// Watcher coalesces file events into debounced calls to Options.Run.
type Watcher struct {
	opts Options
	fsw  *fsnotify.Watcher
}

// New starts watching the existing directories in opts.Dirs.
// Missing directories are skipped; they are not picked up if created later.
func New(opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = 250 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{opts: opts, fsw: fsw}

	for _, dir := range opts.Dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			logger.L().Warn("watch.dir.missing", "dir", dir)
			continue
		}
		if err := w.addTree(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// WatchList returns the directories currently watched.
func (w *Watcher) WatchList() []string { return w.fsw.WatchList() }

// Run blocks until ctx is cancelled. Errors from Options.Run are logged.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	log := logger.L()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						log.Warn("watch.add", "dir", ev.Name, "err", err)
					}
				}
			}
			log.Debug("watch.event", "op", ev.Op.String(), "path", ev.Name)

			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch.error", "err", err)

		case <-fire:
			fire = nil
			if err := w.opts.Run(ctx); err != nil {
				log.Error("watch.run", "err", err)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	// Chmod-only events fire on touch and by indexers.
	if ev.Op == fsnotify.Chmod {
		return false
	}
	for _, p := range w.opts.Ignore {
		if ev.Name == p || strings.HasPrefix(ev.Name, p+string(filepath.Separator)) {
			return false
		}
	}
	return true
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		for _, p := range w.opts.Ignore {
			if path == p {
				return filepath.SkipDir
			}
		}
		return w.fsw.Add(path)
	})
}
