// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in licenses/BSD-golang.txt.

// Portions of this file are additionally subject to the following
// license and copyright.
//
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

// Portions of this code originated in the standard library 'log' package.

package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Logger is the concrete logger type. It writes out logs to the specified
// io.Writer, with the header format determined by the flags set.
type Logger struct {
	w        io.Writer // Where logs are written to
	flag     Flag      // Flag set determining log headers. See options.go
	basePath string    // Base path of the consumer's repository, optional
}

const newline string = "\n"

// New returns a new Logger, configured with the provided options, if any. By
// default logs go to a synchronized os.Stderr with LstdFlags headers:
//
//	Myymmdd hh:mm:ss.micros filename:ln] message
//	I180419 06:33:04.606396 fname.go:42] message
func New(options ...option) *Logger {
	l := &Logger{
		w:    DefaultWriter(),
		flag: LstdFlags,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Discarder returns a Logger configured to discard all writes.
func Discarder() *Logger {
	return New(Writer(io.Discard))
}

// Output writes msg at the given mode, prefixed with label (if non-empty).
// Calldepth is the number of stack frames to skip when attributing the log
// line to a file, 1 being the caller of Output. It is the entry point for
// wrappers that do their own gating, such as pkg/debug.
func (l *Logger) Output(calldepth int, lmode Mode, label, msg string) {
	if label != "" {
		msg = label + ": " + msg
	}
	if !strings.HasSuffix(msg, newline) {
		msg += newline
	}
	l.log(calldepth+1, lmode, msg)
}

// Info logs to the INFO log. Arguments are handled in the manner of
// fmt.Println.
func (l *Logger) Info(v ...interface{}) {
	l.log(2, InfoMode, fmt.Sprintln(v...))
}

// Infof logs to the INFO log. Arguments are handled in the manner of
// fmt.Printf; a newline is appended at the end.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(2, InfoMode, fmt.Sprintf(format+newline, v...))
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(2, WarnMode, fmt.Sprintln(v...))
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log(2, WarnMode, fmt.Sprintf(format+newline, v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.log(2, ErrorMode, fmt.Sprintln(v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(2, ErrorMode, fmt.Sprintf(format+newline, v...))
}

func (l *Logger) Debug(v ...interface{}) {
	l.log(2, DebugMode, fmt.Sprintln(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.log(2, DebugMode, fmt.Sprintf(format+newline, v...))
}

func (l *Logger) Verbose(v ...interface{}) {
	l.log(2, VerboseMode, fmt.Sprintln(v...))
}

func (l *Logger) Verbosef(format string, v ...interface{}) {
	l.log(2, VerboseMode, fmt.Sprintf(format+newline, v...))
}

// Fatal logs to the FATAL log and calls os.Exit(255). Fatal statements are
// never filtered out.
func (l *Logger) Fatal(v ...interface{}) {
	l.log(2, FatalMode, fmt.Sprintln(v...))
	os.Exit(255)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.log(2, FatalMode, fmt.Sprintf(format+newline, v...))
	os.Exit(255)
}

// shouldLog applies, in order, the per-file override for bfile, the global
// mode, and the rule that fatal statements always go through.
func shouldLog(lmode Mode, bfile string) bool {
	fmode, ok := GetFileLogMode(bfile)
	if ok && (fmode&lmode) != DisabledMode {
		return true
	}
	if !ok && (GetGlobalLogMode()&lmode) != DisabledMode {
		return true
	}
	return (lmode & FatalMode) != DisabledMode
}

// log attributes the statement to the frame depth levels above it (2 for
// the exported Logger methods) and writes it out if it passes the filters.
//
// TODO(irfansharif): Right now this isn't robust to shared filenames across
// varied sub packages (for tracepoints and file log modes both).
func (l *Logger) log(depth int, lmode Mode, data string) {
	file, line := caller(depth)
	bfile := filepath.Base(file)

	if GetTracePoint(fmt.Sprintf("%s:%d", bfile, line)) {
		l.w.Write(stacktrace(depth))
	}

	if !shouldLog(lmode, bfile) {
		return
	}

	var buf bytes.Buffer
	buf.Write(l.header(lmode, time.Now(), file, line))
	buf.WriteString(data)
	l.w.Write(buf.Bytes())
}

// header formats the log header as per Logger.flag. If a base path is
// configured and file lies under it, the prefix is dropped for Llongfile.
func (l *Logger) header(lmode Mode, t time.Time, file string, line int) []byte {
	var b []byte
	var buf *[]byte = &b
	if l.flag&Lmode != 0 {
		*buf = append(*buf, lmode.byte())
	}
	if l.flag&LUTC != 0 {
		t = t.UTC()
	}
	if l.flag&(Ldate|Ltime|Lmicroseconds) != 0 {
		datef := l.flag&Ldate != 0
		timef := l.flag&(Ltime|Lmicroseconds) != 0
		if datef {
			year, month, day := t.Date()
			if year < 2000 {
				year = 2000
			}
			itoa(buf, year-2000, 2)
			itoa(buf, int(month), 2)
			itoa(buf, day, 2)
		}

		if datef && timef {
			*buf = append(*buf, ' ')
		}

		if timef {
			hour, min, sec := t.Clock()
			itoa(buf, hour, 2)
			*buf = append(*buf, ':')
			itoa(buf, min, 2)
			*buf = append(*buf, ':')
			itoa(buf, sec, 2)
			if l.flag&Lmicroseconds != 0 {
				*buf = append(*buf, '.')
				itoa(buf, t.Nanosecond()/1e3, 6)
			}
		}
	}

	*buf = append(*buf, ' ')

	if l.flag&(Lshortfile|Llongfile) != 0 {
		if l.basePath != "" && strings.HasPrefix(file, l.basePath+"/") {
			file = file[len(l.basePath)+1:]
		}
		if l.flag&Lshortfile != 0 {
			file = filepath.Base(file)
		}
		*buf = append(*buf, file...)
		*buf = append(*buf, ':')
		itoa(buf, line, -1)
		*buf = append(*buf, "] "...)
	}
	return b
}

// Cheap integer to fixed-width decimal ASCII. Give a negative width to avoid
// zero-padding.
func itoa(buf *[]byte, i int, wid int) {
	// Assemble decimal in reverse order.
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

// stacktrace returns the stack trace for the current goroutine, skipping the
// skip frames immediately preceding it (the caller inclusive). The goroutine
// header line is preserved.
func stacktrace(skip int) []byte {
	skip *= 2 // Each frame is two lines: function, then file:line.
	skip += 2 // For debug.Stack()
	skip += 2 // For stacktrace itself

	bs := bytes.Split(debug.Stack(), []byte(newline))
	if 1+skip > len(bs) {
		return debug.Stack()
	}
	bs = append(bs[:1], bs[1+skip:]...)
	return bytes.Join(bs, []byte(newline))
}

// caller returns the file and line number depth frames above the function
// calling caller; caller(0) is that function's own call site.
func caller(depth int) (file string, line int) {
	// +1 to account for call to caller itself.
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file = "[???]"
		line = -1
	}
	return file, line
}
