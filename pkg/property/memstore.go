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
	"strings"
	"sync"

	"github.com/google/btree"
)

type entry struct {
	key, value string
}

func (e entry) Less(than btree.Item) bool {
	return e.key < than.(entry).key
}

// MemStore is a volatile Store kept in a B-tree so prefix listings come out
// ordered. It is safe for concurrent use.
type MemStore struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

var _ Store = &MemStore{}

func NewMemStore() *MemStore {
	return &MemStore{tree: btree.New(8)}
}

func (m *MemStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item := m.tree.Get(entry{key: key})
	if item == nil {
		return "", false
	}
	return item.(entry).value, true
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cur string
	item := m.tree.Get(entry{key: key})
	if item != nil {
		cur = item.(entry).value
	}
	if err := Validate(key, value, cur, item != nil); err != nil {
		return err
	}

	m.tree.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

func (m *MemStore) Keys(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	m.tree.AscendGreaterOrEqual(entry{key: prefix}, func(i btree.Item) bool {
		k := i.(entry).key
		if !strings.HasPrefix(k, prefix) {
			return false
		}
		keys = append(keys, k)
		return true
	})
	return keys
}

// Len returns the number of properties set.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.Len()
}
