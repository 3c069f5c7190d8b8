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
	"testing"
	"time"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/property"
)

func TestTagKey(t *testing.T) {
	if k := TagKey(TagCompManager); k != "sdm.debug.comp_manager" {
		t.Errorf("unexpected key %s", k)
	}
	if k := TagKey(TagRotator); k != "sdm.debug.rotator" {
		t.Errorf("unexpected key %s", k)
	}
}

func TestWatcherPoll(t *testing.T) {
	store := property.NewMemStore()
	h, _ := newTestHandler()
	w := NewWatcher(h, store, time.Hour)

	if n := w.Poll(); n != 0 {
		t.Errorf("expected nothing applied for unset keys, got %d", n)
	}

	store.Set(TagKey(TagRotator), "3")
	if n := w.Poll(); n != 1 {
		t.Errorf("expected 1 toggle, got %d", n)
	}
	if !h.State().Enabled(TagRotator) || h.State().Verbose() != 2 {
		t.Errorf("expected rotator enabled at verbosity 2, got %v %d", h.State().Mask(), h.State().Verbose())
	}

	if n := w.Poll(); n != 0 {
		t.Errorf("expected unchanged keys to be skipped, got %d", n)
	}

	store.Set(TagKey(TagRotator), "0")
	w.Poll()
	if h.State().Enabled(TagRotator) || h.State().Verbose() != 0 {
		t.Errorf("expected rotator disabled, got %v %d", h.State().Mask(), h.State().Verbose())
	}

	store.Set(TagKey(TagStrategy), "bogus")
	if n := w.Poll(); n != 0 {
		t.Errorf("expected unparseable values to be skipped, got %d", n)
	}
}

func TestWatcherAll(t *testing.T) {
	store := property.NewMemStore()
	h, _ := newTestHandler()
	w := NewWatcher(h, store, time.Hour)

	store.Set(AllKey, "2")
	store.Set(TagKey(TagQDCM), "1")
	w.Poll()
	if h.State().Mask() != AllTags {
		t.Errorf("expected all tags, got %v", h.State().Mask())
	}
	// Tag keys are applied after all, and the verbose level is shared, so
	// qdcm=1 leaves every tag at level 0.
	if v := h.State().Verbose(); v != 0 {
		t.Errorf("expected the qdcm level 0 to win, got %d", v)
	}

	// Turning all off keeps individually enabled tags on.
	store.Set(AllKey, "0")
	if n := w.Poll(); n != 2 {
		t.Errorf("expected all and qdcm to be applied, got %d", n)
	}
	if h.State().Mask() != InitialTags.With(TagQDCM) {
		t.Errorf("expected {none,qdcm}, got %v", h.State().Mask())
	}
}

func TestWatcherUnparseableAll(t *testing.T) {
	store := property.NewMemStore()
	h, _ := newTestHandler()
	w := NewWatcher(h, store, time.Hour)

	store.Set(TagKey(TagQDCM), "3")
	w.Poll()

	// A bad all value is not applied, but still counts as a change and
	// reapplies the tag keys that are set.
	h.DebugStrategy(true, 0)
	store.Set(AllKey, "bogus")
	if n := w.Poll(); n != 1 {
		t.Errorf("expected only qdcm to be applied, got %d", n)
	}
	if v := h.State().Verbose(); v != 2 {
		t.Errorf("expected qdcm to restore level 2, got %d", v)
	}
	if !h.State().Enabled(TagStrategy) {
		t.Error("expected strategy to be left alone")
	}
}

func TestWatcherEmptyValueDisables(t *testing.T) {
	store := property.NewMemStore()
	h, _ := newTestHandler()
	w := NewWatcher(h, store, time.Hour)

	store.Set(TagKey(TagRotator), "3")
	w.Poll()
	store.Set(TagKey(TagRotator), "")
	if n := w.Poll(); n != 1 {
		t.Errorf("expected 1 toggle, got %d", n)
	}
	if h.State().Enabled(TagRotator) {
		t.Error("expected an emptied key to disable rotator")
	}
}

func TestWatcherRun(t *testing.T) {
	store := property.NewMemStore()
	h, _ := newTestHandler()
	w := NewWatcher(h, store, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- w.Run(ctx) }()

	store.Set(TagKey(TagDriverConfig), "1")
	deadline := time.Now().Add(5 * time.Second)
	for !h.State().Enabled(TagDriverConfig) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()

	if err := <-done; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if !h.State().Enabled(TagDriverConfig) {
		t.Error("expected driver-config to be enabled by the watcher")
	}
}
