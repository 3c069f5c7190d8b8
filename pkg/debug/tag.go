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
	"fmt"
	"strings"
)

// Tag names the subsystem a log statement belongs to.
type Tag uint

const (
	// TagNone is always enabled and cannot be masked off.
	TagNone Tag = iota
	TagResources
	TagStrategy
	TagCompManager
	TagDriverConfig
	TagRotator
	TagQDCM

	numTags
)

var tagNames = [numTags]string{
	TagNone:         "none",
	TagResources:    "resources",
	TagStrategy:     "strategy",
	TagCompManager:  "comp-manager",
	TagDriverConfig: "driver-config",
	TagRotator:      "rotator",
	TagQDCM:         "qdcm",
}

func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint(t))
}

// Tags returns the maskable tags, i.e. all but TagNone, in declaration order.
func Tags() []Tag {
	tags := make([]Tag, 0, numTags-1)
	for t := TagNone + 1; t < numTags; t++ {
		tags = append(tags, t)
	}
	return tags
}

// ParseTag is the inverse of Tag.String. Underscores are accepted in place
// of dashes, so that tag names can double as property key suffixes.
func ParseTag(name string) (Tag, error) {
	name = strings.Replace(name, "_", "-", -1)
	for t, n := range tagNames {
		if n == name {
			return Tag(t), nil
		}
	}
	return TagNone, fmt.Errorf("unknown debug tag %q", name)
}

// TagSet is a set of tags, one bit per tag.
type TagSet uint32

const (
	// InitialTags is the set a fresh State starts out with.
	InitialTags = TagSet(1) << TagNone
	// AllTags has every bit set, including bits no tag is defined for yet.
	AllTags = ^TagSet(0)
)

// Has reports whether t is in s.
func (s TagSet) Has(t Tag) bool {
	return t < 32 && s&(1<<t) != 0
}

// With returns s plus t. Tags past the 32-bit word are ignored.
func (s TagSet) With(t Tag) TagSet {
	if t >= 32 {
		return s
	}
	return s | 1<<t
}

// Without returns s minus t. Tags past the 32-bit word are ignored.
func (s TagSet) Without(t Tag) TagSet {
	if t >= 32 {
		return s
	}
	return s &^ (1 << t)
}

// Tags lists the known tags in s.
func (s TagSet) Tags() []Tag {
	var tags []Tag
	for t := TagNone; t < numTags; t++ {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

// String renders the known tags in s, e.g. {none,rotator}.
func (s TagSet) String() string {
	names := make([]string, 0, numTags)
	for _, t := range s.Tags() {
		names = append(names, t.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
