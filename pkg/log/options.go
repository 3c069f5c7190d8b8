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
	"io"
	"path/filepath"
	"runtime"
)

// Flag determines the header prepended to every log line.
type Flag int

const (
	Ldate         Flag = 1 << iota // the date in the local time zone: 180419
	Ltime                          // the time in the local time zone: 01:23:23
	Lmicroseconds                  // microsecond resolution: 01:23:23.123123, assumes Ltime
	Llongfile                      // full file name and line number: /a/b/c/d.go:23
	Lshortfile                     // final file name element and line number: d.go:23, overrides Llongfile
	LUTC                           // if Ldate or Ltime is set, use UTC rather than the local time zone
	Lmode                          // severity byte, I/W/E/F/D/V

	LstdFlags = Lmode | Ldate | Ltime | Lmicroseconds | Lshortfile
)

type option func(l *Logger)

// Writer configures the io.Writer logs are written to. The writer is used
// as is; wrap it with SynchronizedWriter if the Logger is shared.
func Writer(w io.Writer) option {
	return func(l *Logger) {
		l.w = w
	}
}

// Flags configures the header format.
func Flags(f Flag) option {
	return func(l *Logger) {
		l.flag = f
	}
}

// SkipBasePath trims the repository root from file names printed under
// Llongfile, so that headers read pkg/debug/handler.go:42 instead of the
// fully qualified path on the build machine.
func SkipBasePath() option {
	return func(l *Logger) {
		_, file, _, ok := runtime.Caller(0)
		if !ok {
			return
		}
		// <root>/pkg/log/options.go
		l.basePath = filepath.Dir(filepath.Dir(filepath.Dir(file)))
	}
}
