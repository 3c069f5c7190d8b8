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

// Package trace is the trace sink behind debug.Handler.BeginTrace/EndTrace.
// Spans are recorded as golang.org/x/net/trace traces, one family per
// category, and can be inspected on /debug/requests.
package trace

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/net/trace"
)

// DefaultCategory is the category display composition spans are filed under.
const DefaultCategory = "gfx"

// Tracer keeps the stack of open spans for a single category. Spans must be
// closed in the reverse order they were opened; the Tracer does not check
// that callers pair Begin and End.
type Tracer struct {
	category string

	mu   sync.Mutex
	open []trace.Trace
}

// New returns a Tracer filing spans under category.
func New(category string) *Tracer {
	return &Tracer{category: category}
}

func (t *Tracer) Category() string {
	return t.category
}

// Begin opens a span named name.
func (t *Tracer) Begin(name string) {
	tr := trace.New(t.category, name)

	t.mu.Lock()
	t.open = append(t.open, tr)
	t.mu.Unlock()
}

// End closes the most recently opened span. It is a no-op if none is open.
func (t *Tracer) End() {
	t.mu.Lock()
	if len(t.open) == 0 {
		t.mu.Unlock()
		return
	}
	tr := t.open[len(t.open)-1]
	t.open[len(t.open)-1] = nil
	t.open = t.open[:len(t.open)-1]
	t.mu.Unlock()

	tr.Finish()
}

// Depth returns the number of spans currently open.
func (t *Tracer) Depth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.open)
}

// SpanName joins component, operation and label with "::", truncated to
// fit a PathMax sized, NUL terminated buffer. Truncation never splits a
// UTF-8 sequence.
func SpanName(component, operation, label string) string {
	name := fmt.Sprintf("%s::%s::%s", component, operation, label)
	if len(name) < PathMax {
		return name
	}

	n := PathMax - 1
	for n > 0 && !utf8.RuneStart(name[n]) {
		n--
	}
	return name[:n]
}
