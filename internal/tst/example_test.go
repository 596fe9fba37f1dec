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

package tst_test

import (
	"fmt"

	"github.com/dadrus/tst/internal/tst"
)

func Example() {
	trie := tst.New()

	_ = trie.Insert("Hello", 100)
	fmt.Println(trie.Lookup("Hello"))
	fmt.Println(trie.Lookup("goodbye"))

	_ = trie.Insert("Hello", 500)
	fmt.Println(trie.Lookup("Hello"))

	_ = trie.Delete("Hello")
	fmt.Println(trie.Lookup("Hello"))

	trie.Destroy()

	// Output:
	// 100
	// -1
	// 500
	// -1
}
