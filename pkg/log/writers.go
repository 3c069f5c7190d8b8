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
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"
)

var (
	program  = "?"
	hostname = "?"
	username = "?"
	pid      = -1
)

func init() {
	program = filepath.Base(os.Args[0])

	if host, err := os.Hostname(); err == nil {
		hostname = host
	}
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	pid = os.Getpid()
}

// DefaultWriter is a synchronized os.Stderr.
func DefaultWriter() io.Writer {
	return SynchronizedWriter(os.Stderr)
}

// LogRotationWriter writes to files under dirname, starting a new file once
// the current one would exceed sizeThreshold bytes. A <program>.log symlink
// always points at the most recent file. It is not safe for concurrent use
// on its own.
func LogRotationWriter(dirname string, sizeThreshold int) io.Writer {
	os.MkdirAll(dirname, os.ModePerm)
	return &logRotationWriter{
		dirname:       dirname,
		symlink:       fmt.Sprintf("%s.log", program),
		sizeThreshold: sizeThreshold,
	}
}

// SynchronizedWriter serializes writes to w.
func SynchronizedWriter(w io.Writer) io.Writer {
	return &synchronizedWriter{w: w}
}

// MultiWriter duplicates every write to each of the provided writers. Unlike
// io.MultiWriter, a failing writer does not stop the remaining ones.
func MultiWriter(w io.Writer, ws ...io.Writer) io.Writer {
	mw := &multiWriter{}
	mw.ws = append(mw.ws, w)
	mw.ws = append(mw.ws, ws...)
	return mw
}

func generateLogFilename(t time.Time) string {
	return fmt.Sprintf("%s.%s.%s.%s.%d.log",
		program, hostname, username,
		t.Format("2006-01-02.15:04:05.999"), pid,
	)
}

type logRotationWriter struct {
	dirname, symlink               string
	currentFileSize, sizeThreshold int

	currentFile *os.File
}

func (r *logRotationWriter) rotate() error {
	fname := generateLogFilename(time.Now())
	f, err := os.Create(filepath.Join(r.dirname, fname))
	if err != nil {
		return err
	}
	if r.currentFile != nil {
		r.currentFile.Close()
	}

	r.currentFile = f
	r.currentFileSize = 0
	os.Remove(filepath.Join(r.dirname, r.symlink))         // Remove symlink, if any, ignore error.
	os.Symlink(fname, filepath.Join(r.dirname, r.symlink)) // Best effort symlinking, ignore error.
	return nil
}

func (r *logRotationWriter) Write(b []byte) (n int, err error) {
	if r.currentFile == nil || (r.currentFileSize+len(b) > r.sizeThreshold) {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = r.currentFile.Write(b)
	r.currentFileSize += n
	return n, err
}

type synchronizedWriter struct {
	sync.Mutex
	w io.Writer
}

func (s *synchronizedWriter) Write(b []byte) (n int, err error) {
	s.Lock()
	defer s.Unlock()
	return s.w.Write(b)
}

type multiWriter struct {
	ws []io.Writer
}

func (m *multiWriter) Write(b []byte) (n int, err error) {
	n = len(b) // Optimistic estimation.
	for _, w := range m.ws {
		nbytes, er := w.Write(b)
		if nbytes < n {
			n = nbytes
		}
		if er != nil {
			err = er
		}
	}
	return n, err
}
