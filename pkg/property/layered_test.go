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
	"path/filepath"
	"reflect"
	"testing"
)

func TestLayered(t *testing.T) {
	disk, err := OpenBoltStore(filepath.Join(t.TempDir(), "props.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer disk.Close()

	if err := disk.Set("persist.sdm.debug.all", "1"); err != nil {
		t.Fatal(err)
	}

	mem := NewMemStore()
	l := NewLayered(mem, disk)

	if v, ok := l.Get("persist.sdm.debug.all"); !ok || v != "1" {
		t.Errorf("expected the persistent value to show through, got (%s, %t)", v, ok)
	}

	if err := l.Set("sdm.idle_time", "90"); err != nil {
		t.Fatal(err)
	}
	if _, ok := disk.Get("sdm.idle_time"); ok {
		t.Error("expected volatile keys to stay out of the persistent store")
	}

	if err := l.Set("persist.sdm.debug.all", "0"); err != nil {
		t.Fatal(err)
	}
	if v, _ := disk.Get("persist.sdm.debug.all"); v != "0" {
		t.Errorf("expected persist.* writes to reach disk, got %s", v)
	}
	if v, _ := l.Get("persist.sdm.debug.all"); v != "0" {
		t.Errorf("expected 0, got %s", v)
	}

	expected := []string{"persist.sdm.debug.all", "sdm.idle_time"}
	if keys := l.Keys(""); !reflect.DeepEqual(keys, expected) {
		t.Errorf("expected %v, got %v", expected, keys)
	}
}
