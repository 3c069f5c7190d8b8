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
	"sync"
	"testing"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Mask() != InitialTags {
		t.Errorf("expected %v, got %v", InitialTags, s.Mask())
	}
	if s.Verbose() != 0 {
		t.Errorf("expected verbosity 0, got %d", s.Verbose())
	}
}

func TestSetTag(t *testing.T) {
	for _, tag := range Tags() {
		s := NewState()

		s.SetTag(tag, true, 3)
		if !s.Enabled(tag) || s.Verbose() != 3 || !s.VerboseEnabled(tag) {
			t.Errorf("%v: expected enabled at verbosity 3, got mask %v verbosity %d", tag, s.Mask(), s.Verbose())
		}

		s.SetTag(tag, true, 0)
		if !s.Enabled(tag) || s.VerboseEnabled(tag) {
			t.Errorf("%v: expected enabled without verbose output", tag)
		}

		s.SetTag(tag, false, 5)
		if s.Enabled(tag) || s.Verbose() != 0 {
			t.Errorf("%v: expected disabled at verbosity 0, got mask %v verbosity %d", tag, s.Mask(), s.Verbose())
		}
	}
}

func TestSetTagSharesVerbosity(t *testing.T) {
	s := NewState()
	s.SetTag(TagRotator, true, 2)
	s.SetTag(TagStrategy, true, 1)
	if s.Verbose() != 1 {
		t.Errorf("expected the last toggle to set verbosity 1, got %d", s.Verbose())
	}

	// Disabling any tag resets verbosity for all of them.
	s.SetTag(TagStrategy, false, 0)
	if !s.Enabled(TagRotator) || s.VerboseEnabled(TagRotator) {
		t.Errorf("expected rotator enabled without verbose output, got mask %v verbosity %d", s.Mask(), s.Verbose())
	}
}

func TestTagNoneAlwaysEnabled(t *testing.T) {
	s := NewState()
	s.SetTag(TagNone, false, 0)
	s.SetAll(false, 0)
	s.SetAll(true, 4)
	s.SetAll(false, 0)
	for _, tag := range Tags() {
		s.SetTag(tag, true, 1)
		s.SetTag(tag, false, 0)
	}
	if !s.Enabled(TagNone) || !s.Mask().Has(TagNone) {
		t.Errorf("expected none to stay enabled, got %v", s.Mask())
	}
}

func TestSetAll(t *testing.T) {
	s := NewState()
	s.SetAll(true, 2)
	for _, tag := range append(Tags(), TagNone) {
		if !s.Enabled(tag) {
			t.Errorf("expected %v to be enabled", tag)
		}
	}
	if s.Verbose() != 2 {
		t.Errorf("expected verbosity 2, got %d", s.Verbose())
	}

	s.SetAll(false, 7)
	if s.Mask() != InitialTags || s.Verbose() != 0 {
		t.Errorf("expected the initial state, got mask %v verbosity %d", s.Mask(), s.Verbose())
	}
}

func TestSetTagIgnoresUnknownTagsAndNegativeVerbosity(t *testing.T) {
	s := NewState()
	s.SetTag(numTags, true, 3)
	if s.Mask() != InitialTags || s.Verbose() != 0 {
		t.Errorf("expected unknown tag to be ignored, got mask %v verbosity %d", s.Mask(), s.Verbose())
	}

	s.SetTag(TagRotator, true, -1)
	if s.Verbose() != 0 {
		t.Errorf("expected negative verbosity to clamp to 0, got %d", s.Verbose())
	}
}

func TestConcurrentToggles(t *testing.T) {
	s := NewState()

	var wg sync.WaitGroup
	for _, tag := range Tags() {
		wg.Add(1)
		go func(tag Tag) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.SetTag(tag, i%2 == 0, 1)
				_ = s.Enabled(tag)
			}
			s.SetTag(tag, true, 1)
		}(tag)
	}
	wg.Wait()

	for _, tag := range Tags() {
		if !s.Enabled(tag) {
			t.Errorf("expected %v to be enabled; a concurrent toggle was lost", tag)
		}
	}
}
