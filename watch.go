package wangtile

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must be quiet before we reload it;
// editors tend to write a file in several steps.
const debounce = 100 * time.Millisecond

// Watcher rebuilds an Atlas whenever its tileset file changes and
// publishes it through a Holder. A failed rebuild leaves the previous
// atlas in place and is sent on Errors.
type Watcher struct {
	Holder *Holder

	// Reloaded receives each newly published atlas (dropped if nobody
	// is listening).
	Reloaded chan *Atlas
	Errors   chan error

	fname   string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher loads fname once, then watches its directory for changes.
// The initial load must succeed.
func NewWatcher(fname string) (*Watcher, error) {
	a, err := loadAtlas(fname)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory, renames by editors replace the file itself
	if err := fw.Add(filepath.Dir(fname)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		Holder:   NewHolder(a),
		Reloaded: make(chan *Atlas, 1),
		Errors:   make(chan error, 1),
		fname:    fname,
		watcher:  fw,
		closeCh:  make(chan struct{}),
	}, nil
}

// Run processes file events until ctx is done or Close is called.
// A reload happens once the file has been quiet for the debounce window.
func (w *Watcher) Run(ctx context.Context) {
	target := filepath.Clean(w.fname)

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
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			// failures already go out on Errors
			_ = w.Reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Reload rebuilds the atlas from disk now, publishing it on success.
func (w *Watcher) Reload() error {
	a, err := loadAtlas(w.fname)
	if err != nil {
		w.report(err)
		return err
	}
	w.Holder.Store(a)
	select {
	case w.Reloaded <- a:
	default:
	}
	return nil
}

// Close stops the watcher. It's safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

// loadAtlas reads a tsx file and builds an Atlas from it
func loadAtlas(fname string) (*Atlas, error) {
	ts, err := OpenTileset(fname)
	if err != nil {
		return nil, err
	}
	return ts.Atlas()
}
