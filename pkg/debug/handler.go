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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/log"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/property"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/trace"
)

const (
	// IdleTimeKey holds the idle timeout, in milliseconds.
	IdleTimeKey = "sdm.idle_time"
	// DefaultIdleTimeoutMs is used when IdleTimeKey is unset or not numeric.
	DefaultIdleTimeoutMs = 70

	DefaultLabel = "SDM"
)

// ErrNotSupported is returned for properties that are absent or could not be
// written.
var ErrNotSupported = errors.New("not supported")

// LogSink receives the statements that pass the filter. Calldepth follows
// the log.Logger.Output convention.
type LogSink interface {
	Output(calldepth int, m log.Mode, label, msg string)
}

// Tracer receives trace spans.
type Tracer interface {
	Begin(name string)
	End()
}

// Handler filters log statements by tag against a State and forwards those
// that pass to a LogSink. It also fronts the trace sink and property store
// the display stack uses. It is safe for concurrent use.
type Handler struct {
	state  *State
	sink   LogSink
	tracer Tracer
	props  property.Store
	label  string
}

type option func(h *Handler)

func Sink(s LogSink) option {
	return func(h *Handler) { h.sink = s }
}

func Tracing(t Tracer) option {
	return func(h *Handler) { h.tracer = t }
}

func Properties(s property.Store) option {
	return func(h *Handler) { h.props = s }
}

// Label sets the label statements are emitted under.
func Label(label string) option {
	return func(h *Handler) { h.label = label }
}

// NewHandler returns a Handler filtering against state. Unless overridden it
// logs to stderr, traces under trace.DefaultCategory and keeps properties in
// memory.
func NewHandler(state *State, options ...option) *Handler {
	h := &Handler{
		state:  state,
		sink:   log.New(),
		tracer: trace.New(trace.DefaultCategory),
		props:  property.NewMemStore(),
		label:  DefaultLabel,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *Handler) State() *State {
	return h.state
}

func (h *Handler) SetTag(t Tag, enable bool, verbose int) {
	h.state.SetTag(t, enable, verbose)
}

func (h *Handler) DebugAll(enable bool, verbose int) {
	h.state.SetAll(enable, verbose)
}

func (h *Handler) DebugResources(enable bool, verbose int) {
	h.state.SetTag(TagResources, enable, verbose)
}

func (h *Handler) DebugStrategy(enable bool, verbose int) {
	h.state.SetTag(TagStrategy, enable, verbose)
}

func (h *Handler) DebugCompManager(enable bool, verbose int) {
	h.state.SetTag(TagCompManager, enable, verbose)
}

func (h *Handler) DebugDriverConfig(enable bool, verbose int) {
	h.state.SetTag(TagDriverConfig, enable, verbose)
}

func (h *Handler) DebugRotator(enable bool, verbose int) {
	h.state.SetTag(TagRotator, enable, verbose)
}

func (h *Handler) DebugQDCM(enable bool, verbose int) {
	h.state.SetTag(TagQDCM, enable, verbose)
}

func (h *Handler) labelFor(t Tag) string {
	if t == TagNone {
		return h.label
	}
	return h.label + "/" + t.String()
}

// Errorf is never filtered.
func (h *Handler) Errorf(t Tag, format string, args ...interface{}) {
	h.sink.Output(2, log.ErrorMode, h.labelFor(t), fmt.Sprintf(format, args...))
}

// Warningf is never filtered.
func (h *Handler) Warningf(t Tag, format string, args ...interface{}) {
	h.sink.Output(2, log.WarnMode, h.labelFor(t), fmt.Sprintf(format, args...))
}

func (h *Handler) Infof(t Tag, format string, args ...interface{}) {
	if !h.state.Enabled(t) {
		return
	}
	h.sink.Output(2, log.InfoMode, h.labelFor(t), fmt.Sprintf(format, args...))
}

func (h *Handler) Debugf(t Tag, format string, args ...interface{}) {
	if !h.state.Enabled(t) {
		return
	}
	h.sink.Output(2, log.DebugMode, h.labelFor(t), fmt.Sprintf(format, args...))
}

func (h *Handler) Verbosef(t Tag, format string, args ...interface{}) {
	if !h.state.VerboseEnabled(t) {
		return
	}
	h.sink.Output(2, log.VerboseMode, h.labelFor(t), fmt.Sprintf(format, args...))
}

// BeginTrace opens a span named component::operation::label. Every call
// must be paired with an EndTrace from the same call site.
func (h *Handler) BeginTrace(component, operation, label string) {
	h.tracer.Begin(trace.SpanName(component, operation, label))
}

// EndTrace closes the span most recently opened by BeginTrace.
func (h *Handler) EndTrace() {
	h.tracer.End()
}

// IdleTimeoutMs returns the idle timeout configured through IdleTimeKey, or
// DefaultIdleTimeoutMs when it is unset. The value is read like Property, so
// a non-numeric setting reads as 0.
func (h *Handler) IdleTimeoutMs() int {
	n, err := h.Property(IdleTimeKey)
	if err != nil {
		return DefaultIdleTimeoutMs
	}
	return n
}

// Property returns the integer value of key. Values are parsed like C's
// atoi: a non-numeric value reads as 0.
func (h *Handler) Property(key string) (int, error) {
	v, err := h.PropertyString(key)
	if err != nil {
		return 0, err
	}
	return atoi(v), nil
}

// PropertyString returns the value of key. Keys set to the empty string
// count as absent.
func (h *Handler) PropertyString(key string) (string, error) {
	v, ok := h.props.Get(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: property %q not set", ErrNotSupported, key)
	}
	return v, nil
}

func (h *Handler) SetProperty(key, value string) error {
	if err := h.props.Set(key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrNotSupported, err)
	}
	return nil
}

// atoi parses the leading integer in s, after optional whitespace and sign.
// It returns 0 if there are no digits. Out of range values saturate.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}

	n, _ := strconv.Atoi(s[:j]) // Saturates on ErrRange.
	return n
}
