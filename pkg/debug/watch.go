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

package debug

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/property"
)

const (
	// PropertyPrefix namespaces the tag configuration properties.
	PropertyPrefix = "sdm.debug."
	// AllKey toggles every tag at once.
	AllKey = PropertyPrefix + "all"
)

// TagKey returns the property that configures t, e.g.
// sdm.debug.comp_manager.
func TagKey(t Tag) string {
	return PropertyPrefix + strings.Replace(t.String(), "-", "_", -1)
}

// Watcher polls the tag configuration properties of a store and applies
// changes to a Handler. A property value N disables the tag when N <= 0 and
// enables it at verbosity N-1 otherwise. Setting a property that was set
// back to the empty string disables the tag.
//
// AllKey is applied before the tag keys. Any change to it, including one to
// an unparseable value that is itself skipped, reapplies every tag key that
// is set. The verbose level is shared, so the last tag key applied decides
// it: sdm.debug.all=3 with sdm.debug.rotator=1 leaves every tag at level 0.
type Watcher struct {
	handler  *Handler
	store    property.Store
	interval time.Duration

	mu   sync.Mutex
	last map[string]string
}

func NewWatcher(h *Handler, store property.Store, interval time.Duration) *Watcher {
	return &Watcher{
		handler:  h,
		store:    store,
		interval: interval,
		last:     make(map[string]string),
	}
}

// Poll applies the properties that changed since the previous poll and
// returns the number of toggles applied. AllKey is applied first; when it
// changes, every tag property that is set is reapplied on top of it so that
// individually enabled tags survive sdm.debug.all=0.
func (w *Watcher) Poll() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	applied := 0
	allChanged, ok := w.poll(AllKey, false, func(enable bool, verbose int) {
		w.handler.DebugAll(enable, verbose)
	})
	if ok {
		applied++
	}

	for _, t := range Tags() {
		t := t
		_, ok := w.poll(TagKey(t), allChanged, func(enable bool, verbose int) {
			w.handler.SetTag(t, enable, verbose)
		})
		if ok {
			applied++
		}
	}
	return applied
}

// poll checks a single key. It reports whether the value changed and
// whether a toggle was applied.
func (w *Watcher) poll(key string, force bool, apply func(enable bool, verbose int)) (changed, applied bool) {
	v, _ := w.store.Get(key)
	prev, seen := w.last[key]
	w.last[key] = v

	changed = v != prev
	if !seen && v == "" {
		return false, false
	}
	if !changed && !(force && v != "") {
		return changed, false
	}

	n := 0
	if v != "" {
		var err error
		n, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			w.handler.Warningf(TagNone, "ignoring %s=%q: %v", key, v, err)
			return changed, false
		}
	}

	apply(n > 0, n-1)
	w.handler.Infof(TagNone, "applied %s=%q", key, v)
	return changed, true
}

// Run polls every interval until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Poll()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Poll()
		}
	}
}
