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
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/log"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/property"
)

type record struct {
	mode  log.Mode
	label string
	msg   string
}

type testSink struct {
	mu      sync.Mutex
	records []record
}

func (s *testSink) Output(calldepth int, m log.Mode, label, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record{m, label, msg})
}

func (s *testSink) take() []record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.records
	s.records = nil
	return r
}

type testTracer struct {
	open []string
}

func (t *testTracer) Begin(name string) { t.open = append(t.open, name) }
func (t *testTracer) End()              { t.open = t.open[:len(t.open)-1] }

func newTestHandler() (*Handler, *testSink) {
	sink := &testSink{}
	return NewHandler(NewState(), Sink(sink)), sink
}

func emitAll(h *Handler, tag Tag) {
	h.Errorf(tag, "e")
	h.Warningf(tag, "w")
	h.Infof(tag, "i")
	h.Debugf(tag, "d")
	h.Verbosef(tag, "v")
}

func modes(records []record) []log.Mode {
	var ms []log.Mode
	for _, r := range records {
		ms = append(ms, r.mode)
	}
	return ms
}

func TestGating(t *testing.T) {
	all := []log.Mode{log.ErrorMode, log.WarnMode, log.InfoMode, log.DebugMode, log.VerboseMode}
	unverbose := all[:4]
	unconditional := all[:2]

	var tests = []struct {
		name     string
		setup    func(h *Handler)
		tag      Tag
		expected []log.Mode
	}{
		{"initial", func(h *Handler) {}, TagRotator, unconditional},
		{"initial none", func(h *Handler) {}, TagNone, unverbose},
		{"enabled", func(h *Handler) { h.DebugRotator(true, 0) }, TagRotator, unverbose},
		{"enabled verbose", func(h *Handler) { h.DebugRotator(true, 2) }, TagRotator, all},
		{"other tag", func(h *Handler) { h.DebugStrategy(true, 2) }, TagRotator, unconditional},
		{"disabled", func(h *Handler) { h.DebugRotator(true, 2); h.DebugRotator(false, 2) }, TagRotator, unconditional},
		{"all", func(h *Handler) { h.DebugAll(true, 1) }, TagQDCM, all},
		{"all off", func(h *Handler) { h.DebugAll(true, 1); h.DebugAll(false, 0) }, TagQDCM, unconditional},
		{"none after all off", func(h *Handler) { h.DebugAll(false, 0) }, TagNone, unverbose},
	}

	for _, test := range tests {
		h, sink := newTestHandler()
		test.setup(h)
		emitAll(h, test.tag)

		got := modes(sink.take())
		if fmt.Sprint(got) != fmt.Sprint(test.expected) {
			t.Errorf("%s: expected %v, got %v", test.name, test.expected, got)
		}
	}
}

func TestPerTagToggles(t *testing.T) {
	toggles := map[Tag]func(h *Handler, enable bool, verbose int){
		TagResources:    (*Handler).DebugResources,
		TagStrategy:     (*Handler).DebugStrategy,
		TagCompManager:  (*Handler).DebugCompManager,
		TagDriverConfig: (*Handler).DebugDriverConfig,
		TagRotator:      (*Handler).DebugRotator,
		TagQDCM:         (*Handler).DebugQDCM,
	}
	if len(toggles) != len(Tags()) {
		t.Fatalf("expected a toggle for each of %v", Tags())
	}

	for tag, toggle := range toggles {
		h, sink := newTestHandler()

		toggle(h, true, 4)
		if h.State().Verbose() != 4 {
			t.Errorf("%v: expected verbosity 4, got %d", tag, h.State().Verbose())
		}
		h.Infof(tag, "x")
		h.Verbosef(tag, "x")
		if n := len(sink.take()); n != 2 {
			t.Errorf("%v: expected 2 statements once enabled, got %d", tag, n)
		}

		toggle(h, false, 4)
		if h.State().Verbose() != 0 {
			t.Errorf("%v: expected verbosity 0, got %d", tag, h.State().Verbose())
		}
		h.Infof(tag, "x")
		h.Debugf(tag, "x")
		h.Verbosef(tag, "x")
		if n := len(sink.take()); n != 0 {
			t.Errorf("%v: expected no statements once disabled, got %d", tag, n)
		}
	}
}

func TestToggleScenario(t *testing.T) {
	h, sink := newTestHandler()

	h.DebugResources(true, 2)
	h.Infof(TagResources, "x")
	h.Warningf(TagResources, "y")
	expected := []record{
		{log.InfoMode, "SDM/resources", "x"},
		{log.WarnMode, "SDM/resources", "y"},
	}
	if got := sink.take(); fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	h.DebugResources(false, 0)
	h.Infof(TagResources, "x")
	h.Warningf(TagResources, "y")
	expected = []record{{log.WarnMode, "SDM/resources", "y"}}
	if got := sink.take(); fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestFormatting(t *testing.T) {
	h, sink := newTestHandler()
	h.Errorf(TagNone, "layer %d: %s", 3, "no pipe")

	got := sink.take()
	if len(got) != 1 || got[0].msg != "layer 3: no pipe" || got[0].label != "SDM" {
		t.Errorf("unexpected records %v", got)
	}
}

func TestLoggerSink(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := log.New(log.Writer(buffer), log.Flags(log.Lmode|log.Lshortfile))
	h := NewHandler(NewState(), Sink(logger), Label("HWC"))

	h.DebugRotator(true, 0)
	h.Debugf(TagRotator, "session %d", 7)

	regex := "^D handler_test.go:[0-9]+\\] HWC/rotator: session 7\n$"
	if match, _ := regexp.Match(regex, buffer.Bytes()); !match {
		t.Errorf("expected pattern: %q, got: %q", regex, buffer.String())
	}
}

func TestTrace(t *testing.T) {
	tracer := &testTracer{}
	h := NewHandler(NewState(), Sink(&testSink{}), Tracing(tracer))

	h.BeginTrace("HWCDisplay", "Commit", "0")
	h.BeginTrace("CompManager", "Prepare", "")
	if len(tracer.open) != 2 || tracer.open[0] != "HWCDisplay::Commit::0" || tracer.open[1] != "CompManager::Prepare::" {
		t.Errorf("unexpected spans %v", tracer.open)
	}

	h.EndTrace()
	h.EndTrace()
	if len(tracer.open) != 0 {
		t.Errorf("expected all spans closed, got %v", tracer.open)
	}
}

func TestIdleTimeoutMs(t *testing.T) {
	var tests = []struct {
		value    string
		set      bool
		expected int
	}{
		{"", false, DefaultIdleTimeoutMs},
		{"500", true, 500},
		{" 250ms", true, 250},
		{"-1", true, -1},
		{"", true, DefaultIdleTimeoutMs},
		{"off", true, 0},
	}

	for _, test := range tests {
		h, _ := newTestHandler()
		if test.set {
			if err := h.SetProperty(IdleTimeKey, test.value); err != nil {
				t.Fatal(err)
			}
		}
		if got := h.IdleTimeoutMs(); got != test.expected {
			t.Errorf("%s=%q: expected %d, got %d", IdleTimeKey, test.value, test.expected, got)
		}
		// Both reads of the key agree whenever it is set.
		if n, err := h.Property(IdleTimeKey); err == nil && n != test.expected {
			t.Errorf("%s=%q: Property read %d, IdleTimeoutMs read %d", IdleTimeKey, test.value, n, test.expected)
		}
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	h, _ := newTestHandler()

	if _, err := h.Property("sdm.mixer_zorder"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported for an unset key, got %v", err)
	}
	if _, err := h.PropertyString("sdm.mixer_zorder"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported for an unset key, got %v", err)
	}

	if err := h.SetProperty("sdm.mixer_zorder", "7"); err != nil {
		t.Fatal(err)
	}
	if n, err := h.Property("sdm.mixer_zorder"); err != nil || n != 7 {
		t.Errorf("expected (7, nil), got (%d, %v)", n, err)
	}
	if v, err := h.PropertyString("sdm.mixer_zorder"); err != nil || v != "7" {
		t.Errorf("expected (7, nil), got (%s, %v)", v, err)
	}

	if err := h.SetProperty("sdm.name", "primary"); err != nil {
		t.Fatal(err)
	}
	if n, err := h.Property("sdm.name"); err != nil || n != 0 {
		t.Errorf("expected a non-numeric value to read as (0, nil), got (%d, %v)", n, err)
	}
}

func TestSetPropertyRejected(t *testing.T) {
	store := property.NewMemStore()
	h := NewHandler(NewState(), Sink(&testSink{}), Properties(store))

	if err := h.SetProperty("ro.sdm.panel", "cmd"); err != nil {
		t.Fatal(err)
	}
	err := h.SetProperty("ro.sdm.panel", "video")
	if !errors.Is(err, ErrNotSupported) || !errors.Is(err, property.ErrReadOnly) {
		t.Errorf("expected ErrNotSupported wrapping ErrReadOnly, got %v", err)
	}
	if err := h.SetProperty("", "1"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}
