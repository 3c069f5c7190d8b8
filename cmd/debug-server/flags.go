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

package debugserver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/debug"
)

// tagSetting is a single -debug entry, tag[:verbose]. The tag "all"
// stands for every tag.
type tagSetting struct {
	all     bool
	tag     debug.Tag
	verbose int
}

func parseTagSetting(value string) (tagSetting, error) {
	name, level := value, ""
	if i := strings.Index(value, ":"); i >= 0 {
		name, level = value[:i], value[i+1:]
	}

	var s tagSetting
	if level != "" {
		v, err := strconv.Atoi(level)
		if err != nil || v < 0 {
			return s, fmt.Errorf("expected a non-negative verbose level in '%s'", value)
		}
		s.verbose = v
	}

	if name == "all" {
		s.all = true
		return s, nil
	}
	tag, err := debug.ParseTag(name)
	if err != nil {
		return s, err
	}
	if tag == debug.TagNone {
		return s, fmt.Errorf("tag '%s' is always enabled", name)
	}
	s.tag = tag
	return s, nil
}

func parseTagSettings(values []string) ([]tagSetting, error) {
	var settings []tagSetting
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		s, err := parseTagSetting(v)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}

func applyTagSettings(h *debug.Handler, settings []tagSetting) {
	for _, s := range settings {
		if s.all {
			h.DebugAll(true, s.verbose)
			continue
		}
		h.SetTag(s.tag, true, s.verbose)
	}
}
