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

// Package debug implements tag-scoped, runtime reconfigurable logging for the
// display composition stack.
//
// A process builds one State and one Handler at startup and passes the
// Handler to every subsystem. Subsystems log through it with the Tag that
// names them:
//
//	state := debug.NewState()
//	h := debug.NewHandler(state, debug.Sink(logger))
//
//	h.DebugRotator(true, 1)
//	h.Infof(debug.TagRotator, "session %d configured", id)   // emitted
//	h.Verbosef(debug.TagRotator, "buffer %v", buf)           // emitted, verbosity is 1
//	h.Infof(debug.TagStrategy, "selected %s", strategy)      // dropped
//	h.Errorf(debug.TagStrategy, "no strategy for layer %d", i) // always emitted
//
// Error and warning statements are never filtered. Info and debug statements
// go through only for enabled tags, and verbose statements additionally
// require a non-zero verbosity. There is a single verbosity for all tags:
// every toggle overwrites it, and disabling any tag resets it to 0.
//
// A Watcher maps sdm.debug.* properties onto the toggles, so that the filter
// can be reconfigured from outside the process.
package debug
