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
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/log"
)

// LogFlags are the -log-* flags shared by every command, and the logger
// they describe.
type LogFlags struct {
	Dir            string
	SuppressStderr bool
	Mode           LogMode
	Filter         LogFilter
	Backtrace      BacktracePoints
}

// RegisterLogFlags adds -log-dir, -suppress-stderr, -log-mode, -log-filter
// and -log-backtrace-at to fs.
func RegisterLogFlags(fs *flag.FlagSet) *LogFlags {
	l := &LogFlags{}
	fs.StringVar(&l.Dir, "log-dir", "",
		"Write log files to the specified directory")
	fs.BoolVar(&l.SuppressStderr, "suppress-stderr", false,
		"Suppress standard error logging")
	fs.Var(&l.Mode, "log-mode",
		"Log mode for logs emitted globally (can be overridden using -log-filter)")
	fs.Var(&l.Filter, "log-filter",
		"Comma-separated list of pattern:level settings for file-filtered logging")
	fs.Var(&l.Backtrace, "log-backtrace-at",
		"Comma-separated list of filename:N settings to emit backtraces")
	return l
}

// Logger applies the global log settings and returns a logger writing to
// stderr and, with -log-dir, to 50 MiB rotated files.
func (l *LogFlags) Logger() *log.Logger {
	l.apply()

	writer := io.Discard
	if l.Dir != "" {
		writer = log.LogRotationWriter(l.Dir, 50<<20 /* 50 MiB */)
	}
	if !l.SuppressStderr {
		writer = log.MultiWriter(writer, os.Stderr)
	}
	writer = log.SynchronizedWriter(writer)
	logf := log.Ldate | log.Ltime | log.Lmicroseconds | log.Llongfile | log.LUTC | log.Lmode
	return log.New(log.Writer(writer), log.Flags(logf), log.SkipBasePath())
}

func (l *LogFlags) apply() {
	if l.Mode.set {
		log.SetGlobalLogMode(l.Mode.m)
	}
	for _, flm := range l.Filter {
		log.SetFileLogMode(flm.fname, flm.fmode)
	}
	for _, tp := range l.Backtrace {
		log.SetTracePoint(tp)
	}
}

// LogMode is a -log-mode value such as "info|warn".
type LogMode struct {
	m   log.Mode
	set bool
}

func (l *LogMode) String() string {
	return l.m.String()
}

func (l *LogMode) Set(value string) error {
	m, err := log.ParseMode(value)
	if err != nil {
		return err
	}
	l.m, l.set = m, true
	return nil
}

type fileLogMode struct {
	fname string
	fmode log.Mode
}

// LogFilter is a -log-filter value, a list of fname.go:mode overrides.
type LogFilter []fileLogMode

func (l *LogFilter) String() string {
	parts := make([]string, 0, len(*l))
	for _, flm := range *l {
		parts = append(parts, fmt.Sprintf("%s:%s", flm.fname, flm.fmode))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

var fileNameRegex = regexp.MustCompile(`^[\w\-]+\.go$`)

func (l *LogFilter) Set(value string) error {
	for _, f := range strings.Split(value, ",") {
		fname, mode, ok := strings.Cut(f, ":")
		if !ok || strings.Contains(mode, ":") {
			return fmt.Errorf("improperly formatted filter: %s, expected fname.go:mode", f)
		}
		if !fileNameRegex.MatchString(fname) {
			return fmt.Errorf("expected filename '%s' to match the regex '%s'", fname, fileNameRegex)
		}
		fmode, err := log.ParseMode(mode)
		if err != nil {
			return err
		}
		*l = append(*l, fileLogMode{fname: fname, fmode: fmode})
	}
	return nil
}

// BacktracePoints is a -log-backtrace-at value, a list of fname.go:line
// tracepoints.
type BacktracePoints []string

func (b *BacktracePoints) String() string {
	return fmt.Sprint(*b)
}

func (b *BacktracePoints) Set(value string) error {
	for _, f := range strings.Split(value, ",") {
		fname, line, ok := strings.Cut(f, ":")
		if !ok || strings.Contains(line, ":") {
			return fmt.Errorf("improperly formatted backtrace point: %s, expected fname.go:line", f)
		}
		if !fileNameRegex.MatchString(fname) {
			return fmt.Errorf("expected filename '%s' to match the regex '%s'", fname, fileNameRegex)
		}
		if _, err := strconv.Atoi(line); err != nil {
			return fmt.Errorf("expected a line number, got '%s'", line)
		}
		*b = append(*b, fname+":"+line)
	}
	return nil
}
