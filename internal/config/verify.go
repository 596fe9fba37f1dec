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

package config

import "github.com/inhies/go-bytesize"

type VerifyConfig struct {
	// Trials is the number of random operations to apply.
	Trials int `koanf:"trials" validate:"gt=0"`
	// MaxKeyLength bounds the length of generated keys.
	MaxKeyLength int `koanf:"max_key_length" validate:"gt=0"`
	// MaxValue bounds the generated values, which are in [0, MaxValue).
	MaxValue int `koanf:"max_value" validate:"gt=0"`
	// Alphabet is the set of characters keys are built from.
	Alphabet string `koanf:"alphabet" validate:"required"`
	// DeleteRatio is the probability of a step deleting a key before inserting one.
	DeleteRatio float64 `koanf:"delete_ratio" validate:"gte=0,lte=1"`
	// Seed makes runs reproducible. 0 means a random seed.
	Seed uint64 `koanf:"seed"`
	// MaxMemory is the memory the filled trie may take. 0 disables the check.
	MaxMemory bytesize.ByteSize `koanf:"max_memory" validate:"gte=0"`
}
