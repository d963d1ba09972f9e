// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keywatch

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/orderedtree/fault"
	"github.com/bitmark-inc/orderedtree/orderedset"
)

const (
	// reloads waiting for the run loop
	pendingSize = 64

	// finest janitor resolution for the quiet window
	minimumCleanupInterval = 5 * time.Millisecond
)

// LoadFunc - read a whole file into a set
type LoadFunc[K any] func(fileName string) (*orderedset.Set[K], error)

// Options - reload tuning
type Options struct {
	ReloadRate  rate.Limit    // reloads per second, over all files
	ReloadBurst int           // reloads allowed back to back
	QuietWindow time.Duration // file must be quiet this long before a reload
}

// Watcher - holds the latest snapshot of each watched file
type Watcher[K any] struct {
	sync.Mutex

	log      *logger.L
	reporter Reporter
	load     LoadFunc[K]

	watcher     *fsnotify.Watcher
	directories map[string]struct{}
	files       map[string]*orderedset.Set[K]

	limiter *rate.Limiter
	quiet   *cache.Cache
	pending chan string
	done    chan struct{}
	closed  bool

	statistics Statistics
}

// New - create a watcher, files are added with Add
func New[K any](log *logger.L, reporter Reporter, load LoadFunc[K], options Options) (*Watcher[K], error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if options.ReloadBurst <= 0 {
		return nil, fault.ErrInvalidBurst
	}
	if options.QuietWindow <= 0 || options.ReloadRate <= 0 {
		return nil, fault.ErrInvalidDuration
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	cleanup := max(options.QuietWindow/2, minimumCleanupInterval)

	w := &Watcher[K]{
		log:         log,
		reporter:    reporter,
		load:        load,
		watcher:     watcher,
		directories: make(map[string]struct{}),
		files:       make(map[string]*orderedset.Set[K]),
		limiter:     rate.NewLimiter(options.ReloadRate, options.ReloadBurst),
		quiet:       cache.New(options.QuietWindow, cleanup),
		pending:     make(chan string, pendingSize),
		done:        make(chan struct{}),
	}

	// an entry expires once its file has been quiet for the window
	w.quiet.OnEvicted(w.expired)

	return w, nil
}

// Add - load a file and start watching it
func (w *Watcher[K]) Add(fileName string) error {
	path, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return err
	}

	w.Lock()
	defer w.Unlock()

	if w.closed {
		return fault.ErrWatcherClosed
	}
	if _, ok := w.files[path]; ok {
		return fmt.Errorf("%w: %q", fault.ErrDuplicateFile, path)
	}

	s, err := w.load(path)
	if nil != err {
		return err
	}

	dir := filepath.Dir(path)
	if _, ok := w.directories[dir]; !ok {
		if err := w.watcher.Add(dir); nil != err {
			w.log.Errorf("watch directory: %q  error: %s", dir, err)
			return err
		}
		w.directories[dir] = struct{}{}
	}

	w.files[path] = s
	w.log.Infof("watching: %q  keys: %d", path, s.Len())
	return nil
}

// Files - absolute names of all watched files, sorted
func (w *Watcher[K]) Files() []string {
	w.Lock()
	defer w.Unlock()
	return slices.Sorted(maps.Keys(w.files))
}

// Snapshot - copy of the latest keys loaded from a file
func (w *Watcher[K]) Snapshot(fileName string) (*orderedset.Set[K], bool) {
	w.Lock()
	defer w.Unlock()
	s, ok := w.files[fileName]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Statistics - running totals
func (w *Watcher[K]) Statistics() *Statistics {
	return &w.statistics
}

// Reload - read a watched file again and report the difference from
// the previous snapshot
//
// if the file cannot be read the previous snapshot is kept
func (w *Watcher[K]) Reload(fileName string) (Change, error) {
	w.Lock()
	previous, ok := w.files[fileName]
	w.Unlock()

	if !ok {
		return Change{}, fmt.Errorf("%w: %q", fault.ErrFileNotWatched, fileName)
	}

	current, err := w.load(fileName)
	if nil != err {
		w.statistics.Failures.Increment()
		w.reporter.Failed(fileName, err)
		return Change{}, err
	}

	added := current.Difference(previous)
	removed := previous.Difference(current)

	w.Lock()
	w.files[fileName] = current
	w.Unlock()

	w.statistics.Reloads.Increment()
	w.statistics.Added.Add(added.Len())
	w.statistics.Removed.Add(removed.Len())

	change := Change{
		FileName: fileName,
		Count:    current.Len(),
		Added:    toStrings(added),
		Removed:  toStrings(removed),
	}
	if change.IsEmpty() {
		w.log.Debugf("file: %q  unchanged", fileName)
	} else {
		w.reporter.Report(change)
	}
	return change, nil
}

func toStrings[K any](s *orderedset.Set[K]) []string {
	if s.IsEmpty() {
		return nil
	}
	result := make([]string, 0, s.Len())
	for key := range s.All() {
		result = append(result, fmt.Sprint(key))
	}
	return result
}

// Run - background process: collect events and perform reloads until
// shutdown
func (w *Watcher[K]) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)

		case fileName := <-w.pending:
			proceed, err := throttle(w.limiter, shutdown)
			if nil != err {
				log.Warnf("file: %q  throttle error: %s", fileName, err)
				continue loop
			}
			if !proceed {
				break loop
			}
			if _, err := w.Reload(fileName); nil != err {
				log.Errorf("file: %q  reload error: %s", fileName, err)
			}
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

// events arrive for every file in a watched directory, only those
// for watched files count
func (w *Watcher[K]) handleEvent(event fsnotify.Event) {
	name := filepath.Clean(event.Name)

	w.Lock()
	_, watched := w.files[name]
	w.Unlock()

	if !watched {
		return
	}

	w.statistics.Events.Increment()
	w.log.Debugf("file event: %v", event)

	switch {
	case isRemove(event):
		w.log.Warnf("file: %q  removed, keeping last keys until it reappears", name)
	case isChange(event):
		// restart the quiet window
		w.quiet.Set(name, event.Op, cache.DefaultExpiration)
	}
}

func isRemove(event fsnotify.Event) bool {
	return 0 != event.Op&(fsnotify.Remove|fsnotify.Rename)
}

func isChange(event fsnotify.Event) bool {
	return 0 != event.Op&(fsnotify.Write|fsnotify.Create)
}

// called by the cache janitor
func (w *Watcher[K]) expired(fileName string, _ interface{}) {
	select {
	case w.pending <- fileName:
	case <-w.done:
	}
}

// Close - stop watching, Run returns once the event channels close
func (w *Watcher[K]) Close() error {
	w.Lock()
	if w.closed {
		w.Unlock()
		return nil
	}
	w.closed = true
	w.Unlock()

	close(w.done)

	// release the janitor's reference so it can be collected
	w.quiet.OnEvicted(nil)
	w.quiet.Flush()

	return w.watcher.Close()
}
