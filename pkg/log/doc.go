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

// Package log implements leveled execution logs and serves as the log sink
// for pkg/debug. Commands wire it up through the following flags:
//
//	-log-dir string
//	      Write log files in this directory.
//	-suppress-stderr
//	      Suppress standard error logging.
//	-log-mode (info|warn|error|debug|verbose)
//	      Log mode for logs emitted (global, can be overridden using -log-filter).
//	-log-filter value
//	      Comma-separated list of fname.go:mode settings for file-filtered logging.
//	-log-backtrace-at value
//	      Comma-separated list of filename:N settings, when any logging statement at
//	      the specified locations are executed, a stack trace will be emitted.
//
// These hooks can be invoked at runtime, so a running service can accept
// logger reconfigurations over RPC.
//
// Basic example:
//
//	logger := log.New()
//	logger.Info("hello, world")
//
// Writers compose:
//
//	writer := log.MultiWriter(os.Stderr,
//		log.LogRotationWriter("/logs", 50<<20 /* 50 MiB */))
//	writer = log.SynchronizedWriter(writer)
//
//	logf := log.Lmode | log.Ldate | log.Ltime | log.Llongfile
//	logger := log.New(log.Writer(writer), log.Flags(logf))
//
// Wrappers that do their own filtering call Logger.Output with an explicit
// call depth so the header still points at their caller.
package log
