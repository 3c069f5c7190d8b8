// Copyright 2018 The Kura Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package property

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/log"
	"github.com/fsnotify/fsnotify"
)

// LoadFile reads a build.prop style file into store. Each line is
// key=value; the value is everything after the first '=', taken literally
// (no quoting, expansion or trailing comments). Blank lines, lines starting
// with '#' and lines without '=' are skipped. Lines are applied in file
// order, so a later line overrides an earlier one. Keys the store rejects
// because they are read-only are skipped, any other rejection aborts the
// load. It returns the number of properties set.
func LoadFile(store Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for lineno := 1; scanner.Scan(); lineno++ {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		err := store.Set(key, value)
		if errors.Is(err, ErrReadOnly) {
			continue
		}
		if err != nil {
			return n, fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}
	return n, nil
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimLeft(line, " \t")
	if line == "" || line[0] == '#' {
		return "", "", false
	}
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimRight(key, " \t")
	value = strings.TrimRight(strings.TrimLeft(value, " \t"), "\r")
	return key, value, key != ""
}

// FileWatcher reloads a property file into a store whenever it changes on
// disk. Bursts of events (editors often write a file in several steps) are
// coalesced.
type FileWatcher struct {
	path     string
	store    Store
	logger   *log.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// WatchFile loads path into store once and keeps reloading it on change
// until Stop is called. The parent directory is watched so that files
// replaced by rename are picked up too.
func WatchFile(logger *log.Logger, store Store, path string) (*FileWatcher, error) {
	if _, err := LoadFile(store, path); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &FileWatcher{
		path:     filepath.Clean(path),
		store:    store,
		logger:   logger,
		watcher:  watcher,
		debounce: 50 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.watchLoop()
	return w, nil
}

func (w *FileWatcher) watchLoop() {
	defer close(w.doneCh)

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			n, err := LoadFile(w.store, w.path)
			if err != nil {
				w.logger.Warnf("reloading %s: %v", w.path, err)
				continue
			}
			w.logger.Infof("reloaded %d properties from %s", n, w.path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnf("watching %s: %v", w.path, err)
		}
	}
}

// Stop stops watching and waits for the watch loop to exit.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
	<-w.doneCh
}
