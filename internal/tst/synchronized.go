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

package tst

import "sync"

// Synchronized guards a single Trie with a read-write lock. Lookups may run in
// parallel, modifications are exclusive.
type Synchronized struct {
	mut  sync.RWMutex
	trie *Trie
}

func NewSynchronized() *Synchronized { return &Synchronized{trie: New()} }

func (s *Synchronized) Insert(key string, value int) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.trie.Insert(key, value)
}

func (s *Synchronized) Lookup(key string) int {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.trie.Lookup(key)
}

func (s *Synchronized) Get(key string) (int, bool) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.trie.Get(key)
}

func (s *Synchronized) Delete(key string) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.trie.Delete(key)
}

func (s *Synchronized) Destroy() {
	s.mut.Lock()
	defer s.mut.Unlock()

	s.trie.Destroy()
}

func (s *Synchronized) Stats() Stats {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.trie.Stats()
}

func (s *Synchronized) Footprint() int {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.trie.Footprint()
}
