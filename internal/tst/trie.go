// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package tst implements a ternary search trie mapping byte string keys to
// non-negative integer values.
//
// A Trie is not safe for concurrent use. Wrap it into a Synchronized if it has
// to be shared between goroutines.
package tst

import (
	"github.com/DmitriyVTitov/size"

	"github.com/dadrus/tst/internal/x/errorchain"
)

// Absent is reported by Lookup for keys without a stored value.
const Absent = -1

type Trie struct {
	// root is the sentinel. It does not take part in character comparison,
	// its mid link is the entry to all non-empty keys and its value slot
	// belongs to the empty key.
	root     *node
	released bool
}

type Stats struct {
	// Nodes is the number of allocated nodes, the sentinel included.
	Nodes int `json:"nodes"`
	// Keys is the number of stored keys.
	Keys int `json:"keys"`
}

// New returns an empty trie. Nothing is allocated before the first insertion.
func New() *Trie { return &Trie{} }

// Insert associates value with key, overwriting any previously stored value.
func (t *Trie) Insert(key string, value int) error {
	if t.released {
		return errorchain.NewWithMessage(ErrInvalidState, "insertion into a destroyed trie")
	}

	if value < 0 {
		return errorchain.NewWithMessagef(ErrInvalidValue, "value %d is negative", value)
	}

	if t.root == nil {
		t.root = &node{}
	}

	if len(key) == 0 {
		t.root.setValue(value)

		return nil
	}

	t.root.mid = insertNode(t.root.mid, key, 0, value)

	return nil
}

// Lookup returns the value stored for key or Absent.
func (t *Trie) Lookup(key string) int {
	value, _ := t.Get(key)

	return value
}

// Get works like Lookup, but additionally reports whether the key is present.
func (t *Trie) Get(key string) (int, bool) {
	if t.root == nil {
		return Absent, false
	}

	if len(key) == 0 {
		if !t.root.hasValue {
			return Absent, false
		}

		return t.root.value, true
	}

	return lookupNode(t.root.mid, key, 0)
}

// Delete removes key and reclaims nodes no other key depends on. Deleting a
// key which is not present is a no-op.
func (t *Trie) Delete(key string) error {
	if t.released {
		return errorchain.NewWithMessage(ErrInvalidState, "deletion from a destroyed trie")
	}

	if t.root == nil {
		t.root = &node{}
	}

	if len(key) == 0 {
		t.root.clearValue()

		return nil
	}

	t.root.mid = deleteNode(t.root.mid, key, 0)

	return nil
}

// Destroy releases all nodes. The trie must not be used for modifications
// afterwards. Lookups report Absent.
func (t *Trie) Destroy() {
	if t.released {
		return
	}

	releaseNode(t.root)

	t.root = nil
	t.released = true
}

// Stats walks the whole trie and counts its nodes and keys.
func (t *Trie) Stats() Stats {
	var stats Stats

	walkNodes(t.root, func(n *node) {
		stats.Nodes++

		if n.hasValue {
			stats.Keys++
		}
	})

	return stats
}

// Footprint approximates the memory taken by the trie in bytes.
func (t *Trie) Footprint() int { return size.Of(t) }
