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

package cli

import (
	"flag"
	"io"
	"testing"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/log"
)

func TestRegisterLogFlags(t *testing.T) {
	fs := flag.NewFlagSet("debug-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	l := RegisterLogFlags(fs)

	err := fs.Parse([]string{
		"-log-dir", "/var/log/sdm",
		"-suppress-stderr",
		"-log-mode", "info|debug",
		"-log-filter", "run.go:verbose",
		"-log-backtrace-at", "server.go:42",
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Dir != "/var/log/sdm" || !l.SuppressStderr {
		t.Errorf("unexpected dir/suppress: %q/%t", l.Dir, l.SuppressStderr)
	}
	if !l.Mode.set || l.Mode.m != log.InfoMode|log.DebugMode {
		t.Errorf("unexpected mode %v (set=%t)", l.Mode.m, l.Mode.set)
	}
	if len(l.Filter) != 1 || l.Filter[0].fname != "run.go" || l.Filter[0].fmode != log.VerboseMode {
		t.Errorf("unexpected filter %v", l.Filter)
	}
	if len(l.Backtrace) != 1 || l.Backtrace[0] != "server.go:42" {
		t.Errorf("unexpected backtrace points %v", l.Backtrace)
	}
}

func TestLogModeFlag(t *testing.T) {
	var m LogMode
	if err := m.Set("warn|error"); err != nil {
		t.Fatal(err)
	}
	if m.String() != "warn|error" {
		t.Errorf("expected warn|error, got %s", m.String())
	}
	if err := m.Set("loud"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestLogFilterFlag(t *testing.T) {
	var f LogFilter
	if err := f.Set("run.go:debug,server.go:warn|error"); err != nil {
		t.Fatal(err)
	}
	if len(f) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(f))
	}
	if f[1].fmode != log.WarnMode|log.ErrorMode {
		t.Errorf("unexpected second filter mode: %v", f[1].fmode)
	}

	for _, bad := range []string{"run.go", "run:debug", "run.go:loud", "run.go:info:x"} {
		var f LogFilter
		if err := f.Set(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestBacktracePointsFlag(t *testing.T) {
	var b BacktracePoints
	if err := b.Set("run.go:42,server.go:7"); err != nil {
		t.Fatal(err)
	}
	if len(b) != 2 || b[0] != "run.go:42" || b[1] != "server.go:7" {
		t.Errorf("unexpected backtrace points: %v", b)
	}
	for _, bad := range []string{"run.go:x", "run.go", "run:42"} {
		var b BacktracePoints
		if err := b.Set(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
