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

package property

import (
	"sort"
	"strings"
)

// Layered combines a volatile store with a persistent one. Reads prefer the
// volatile layer; writes always land there, and persist.* keys are
// additionally written through to the persistent layer.
type Layered struct {
	volatile   Store
	persistent Store
}

var _ Store = &Layered{}

func NewLayered(volatile, persistent Store) *Layered {
	return &Layered{volatile: volatile, persistent: persistent}
}

func (l *Layered) Get(key string) (string, bool) {
	if v, ok := l.volatile.Get(key); ok {
		return v, true
	}
	if l.persistent == nil {
		return "", false
	}
	return l.persistent.Get(key)
}

func (l *Layered) Set(key, value string) error {
	if strings.HasPrefix(key, PersistPrefix) && l.persistent != nil {
		if err := l.persistent.Set(key, value); err != nil {
			return err
		}
	}
	return l.volatile.Set(key, value)
}

func (l *Layered) Keys(prefix string) []string {
	keys := l.volatile.Keys(prefix)
	if l.persistent == nil {
		return keys
	}

	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	for _, k := range l.persistent.Keys(prefix) {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
