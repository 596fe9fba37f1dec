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

type node struct {
	char     byte
	value    int
	hasValue bool

	// left and right hold siblings at the same depth, ordered by char.
	left  *node
	right *node
	// mid continues the key one character deeper.
	mid *node
}

func (n *node) setValue(value int) {
	n.value = value
	n.hasValue = true
}

func (n *node) clearValue() {
	n.value = 0
	n.hasValue = false
}

func (n *node) dead() bool { return !n.hasValue && n.mid == nil }

func insertNode(n *node, key string, idx int, value int) *node {
	if n == nil {
		n = &node{char: key[idx]}
	}

	switch char := key[idx]; {
	case char < n.char:
		n.left = insertNode(n.left, key, idx, value)
	case char > n.char:
		n.right = insertNode(n.right, key, idx, value)
	case idx+1 < len(key):
		n.mid = insertNode(n.mid, key, idx+1, value)
	default:
		n.setValue(value)
	}

	return n
}

func lookupNode(n *node, key string, idx int) (int, bool) {
	if n == nil {
		return Absent, false
	}

	switch char := key[idx]; {
	case char < n.char:
		return lookupNode(n.left, key, idx)
	case char > n.char:
		return lookupNode(n.right, key, idx)
	case idx+1 < len(key):
		return lookupNode(n.mid, key, idx+1)
	case n.hasValue:
		return n.value, true
	default:
		return Absent, false
	}
}

// deleteNode clears the value stored for key and returns the node which has
// to take the place of n in its parent's link.
func deleteNode(n *node, key string, idx int) *node {
	if n == nil {
		return nil
	}

	switch char := key[idx]; {
	case char < n.char:
		n.left = deleteNode(n.left, key, idx)
	case char > n.char:
		n.right = deleteNode(n.right, key, idx)
	case idx+1 < len(key):
		n.mid = deleteNode(n.mid, key, idx+1)
	default:
		n.clearValue()
	}

	return prune(n)
}

func prune(n *node) *node {
	if !n.dead() {
		return n
	}

	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	default:
		// a branch point between two sibling subtrees, kept as there is no rotation
		return n
	}
}

// releaseNode unlinks the subtree rooted at n, children before parent, and
// returns the number of released nodes.
func releaseNode(n *node) int {
	if n == nil {
		return 0
	}

	count := releaseNode(n.left) + releaseNode(n.mid) + releaseNode(n.right) + 1

	n.left, n.mid, n.right = nil, nil, nil
	n.clearValue()

	return count
}

func walkNodes(n *node, fn func(n *node)) {
	if n == nil {
		return
	}

	walkNodes(n.left, fn)
	fn(n)
	walkNodes(n.mid, fn)
	walkNodes(n.right, fn)
}
