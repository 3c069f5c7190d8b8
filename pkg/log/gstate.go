// Copyright 2018 Irfan Sharif.
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

package log

import (
	"sync"
	"sync/atomic"
)

// cowMap is a copy-on-write map. Readers never block; writers serialize on mu,
// copy the current map, apply their update and atomically publish the copy.
// Existing readers keep working with the version they loaded.
type cowMap[V any] struct {
	mu sync.Mutex
	m  atomic.Value // type: map[string]V
}

func newCOWMap[V any]() *cowMap[V] {
	c := &cowMap[V]{}
	c.m.Store(make(map[string]V))
	return c
}

func (c *cowMap[V]) load() map[string]V {
	return c.m.Load().(map[string]V)
}

func (c *cowMap[V]) get(k string) (V, bool) {
	v, ok := c.load()[k]
	return v, ok
}

func (c *cowMap[V]) update(fn func(m map[string]V)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.load()
	next := make(map[string]V, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	fn(next)
	c.m.Store(next)
}

type gstateT struct {
	gmode       atomic.Value // type: Mode
	tracePoints *cowMap[struct{}]
	fileModes   *cowMap[Mode]
}

var gstate = gstateT{
	tracePoints: newCOWMap[struct{}](),
	fileModes:   newCOWMap[Mode](),
}

func init() {
	gstate.gmode.Store(DefaultMode)
}

// SetGlobalLogMode sets the global log mode to the one specified. Logging
// outside what's included in the mode is thereby suppressed.
func SetGlobalLogMode(m Mode) {
	gstate.gmode.Store(m)
}

// GetGlobalLogMode gets the currently set global log mode.
func GetGlobalLogMode() Mode {
	return gstate.gmode.Load().(Mode)
}

// SetTracePoint enables the provided tracepoint. A tracepoint is of the form
// filename.go:line-number corresponding to the position of a logging
// statement that once enabled, emits a backtrace when the statement is
// executed, regardless of its mode.
func SetTracePoint(tp string) {
	gstate.tracePoints.update(func(m map[string]struct{}) { m[tp] = struct{}{} })
}

// ResetTracePoint disables the provided tracepoint.
func ResetTracePoint(tp string) {
	gstate.tracePoints.update(func(m map[string]struct{}) { delete(m, tp) })
}

// GetTracePoint checks if the corresponding tracepoint is enabled.
func GetTracePoint(tp string) bool {
	_, ok := gstate.tracePoints.get(tp)
	return ok
}

// SetFileLogMode sets the log mode for the provided filename. Subsequent
// logging statements within the file get filtered accordingly.
func SetFileLogMode(fname string, m Mode) {
	gstate.fileModes.update(func(mm map[string]Mode) { mm[fname] = m })
}

// GetFileLogMode gets the log mode for the specified file.
func GetFileLogMode(fname string) (Mode, bool) {
	return gstate.fileModes.get(fname)
}

// ResetFileLogMode resets the log mode for the provided filename. Subsequent
// logging statements within the file get filtered as per the global log mode.
func ResetFileLogMode(fname string) {
	gstate.fileModes.update(func(mm map[string]Mode) { delete(mm, fname) })
}
