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
	"math"
	"sync/atomic"
)

// State is the live tag filter: which tags are enabled, and a single
// verbosity level shared by all of them. It is meant to be constructed once
// by the process and handed to every subsystem that logs.
//
// Each field is an independent atomic word. Readers never block, and may
// observe a mask and a verbosity from two different toggles; the filter is
// best effort in that respect.
type State struct {
	mask    uint32 // TagSet
	verbose int32
}

// NewState returns a State with only TagNone enabled and verbosity 0.
func NewState() *State {
	return &State{mask: uint32(InitialTags)}
}

// SetTag enables or disables t. Enabling sets the verbosity to verbose;
// disabling resets it to 0, whatever tag it was last set through. TagNone
// and unknown tags are ignored.
func (s *State) SetTag(t Tag, enable bool, verbose int) {
	if t == TagNone || t >= numTags {
		return
	}

	for {
		old := atomic.LoadUint32(&s.mask)
		next := TagSet(old).Without(t)
		if enable {
			next = TagSet(old).With(t)
		}
		if atomic.CompareAndSwapUint32(&s.mask, old, uint32(next)) {
			break
		}
	}

	if !enable {
		verbose = 0
	}
	atomic.StoreInt32(&s.verbose, clampVerbose(verbose))
}

// SetAll enables every tag at the given verbosity, or resets the State to
// what NewState returns.
func (s *State) SetAll(enable bool, verbose int) {
	if enable {
		atomic.StoreUint32(&s.mask, uint32(AllTags))
		atomic.StoreInt32(&s.verbose, clampVerbose(verbose))
		return
	}
	atomic.StoreUint32(&s.mask, uint32(InitialTags))
	atomic.StoreInt32(&s.verbose, 0)
}

// Verbosity is non-negative.
func clampVerbose(v int) int32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}

// Enabled reports whether info and debug statements for t go through.
func (s *State) Enabled(t Tag) bool {
	return t == TagNone || s.Mask().Has(t)
}

// VerboseEnabled reports whether verbose statements for t go through.
func (s *State) VerboseEnabled(t Tag) bool {
	return s.Enabled(t) && s.Verbose() != 0
}

// Mask returns the set of enabled tags.
func (s *State) Mask() TagSet {
	return TagSet(atomic.LoadUint32(&s.mask))
}

// Verbose returns the verbose level shared by every tag.
func (s *State) Verbose() int {
	return int(atomic.LoadInt32(&s.verbose))
}
