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

// Package script executes sequences of trie operations described in YAML (or
// JSON) documents and checks their outcome against the expected values.
package script

import (
	"bytes"
	_ "embed"
)

type Kind string

const (
	KindInsert  Kind = "insert"
	KindLookup  Kind = "lookup"
	KindDelete  Kind = "delete"
	KindDestroy Kind = "destroy"
)

type Operation struct {
	Op    Kind   `json:"op"    validate:"oneof=insert lookup delete destroy"`
	Key   string `json:"key"`
	Value int    `json:"value" validate:"gte=0"`
	// Expect is the value a lookup has to report. -1 stands for absent.
	Expect *int `json:"expect" validate:"omitempty,gte=-1"`
}

type Script struct {
	Name       string      `json:"name"`
	Operations []Operation `json:"operations" validate:"required,min=1,dive"`
}

//go:embed scenarios/hello.yaml
var helloScenario []byte

// Demo returns the built-in scenario: Hello is inserted, looked up,
// overwritten and deleted before the trie is destroyed.
func Demo(decoder *Decoder) (*Script, error) {
	return decoder.Decode(bytes.NewReader(helloScenario))
}
