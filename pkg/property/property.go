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

// Package property implements a process-wide key-value property store in
// the manner of Android system properties: string keys to string values,
// bounded in size, with write-once ro.* keys and persist.* keys that
// survive restarts.
package property

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// NameMax bounds key length; keys must be shorter than this.
	NameMax = 32
	// ValueMax bounds value length; values must be shorter than this.
	ValueMax = 92

	// ReadOnlyPrefix marks keys that can be set once and never changed.
	ReadOnlyPrefix = "ro."
	// PersistPrefix marks keys that are written through to persistent storage.
	PersistPrefix = "persist."
)

var (
	ErrInvalidName  = errors.New("invalid property name")
	ErrValueTooLong = errors.New("property value too long")
	ErrReadOnly     = errors.New("property is read-only")
)

// Store is a string-to-string property store. Get reports whether the key
// is present; Set reports why a write was rejected, if it was.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
	// Keys returns the keys starting with prefix, in lexical order.
	Keys(prefix string) []string
}

// Validate checks a prospective write of value to key, given the current
// value (if any).
func Validate(key, value string, cur string, exists bool) error {
	if key == "" || len(key) >= NameMax || strings.ContainsAny(key, " \t\n=") {
		return fmt.Errorf("%w: %q", ErrInvalidName, key)
	}
	if len(value) >= ValueMax {
		return fmt.Errorf("%w: %d bytes for %q", ErrValueTooLong, len(value), key)
	}
	if exists && strings.HasPrefix(key, ReadOnlyPrefix) && cur != value {
		return fmt.Errorf("%w: %q", ErrReadOnly, key)
	}
	return nil
}
