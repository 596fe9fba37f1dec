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

package script

import (
	"bytes"
	"errors"
	"io"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/tst/internal/validation"
	"github.com/dadrus/tst/internal/x/errorchain"
)

type Decoder struct {
	validator         validation.Validator
	substituteEnvVars bool
}

type DecoderOption func(d *Decoder)

// WithEnvVarsSubstitution enables replacement of ${VAR} references by the
// values of the corresponding environment variables before parsing.
func WithEnvVarsSubstitution(flag bool) DecoderOption {
	return func(d *Decoder) {
		d.substituteEnvVars = flag
	}
}

func NewDecoder(validator validation.Validator, opts ...DecoderOption) *Decoder {
	decoder := &Decoder{validator: validator}

	for _, opt := range opts {
		opt(decoder)
	}

	return decoder
}

func (d *Decoder) Decode(reader io.Reader) (*Script, error) {
	var rawScript map[string]any

	if d.substituteEnvVars {
		raw, err := io.ReadAll(reader)
		if err != nil {
			return nil, errorchain.NewWithMessage(ErrScript, "reading script failed").CausedBy(err)
		}

		content, err := envsubst.EvalEnv(string(raw))
		if err != nil {
			return nil, errorchain.NewWithMessage(ErrScript,
				"substitution of environment variables failed").CausedBy(err)
		}

		reader = bytes.NewReader([]byte(content))
	}

	dec := yaml.NewDecoder(reader)
	if err := dec.Decode(&rawScript); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errorchain.NewWithMessage(ErrScript, "script is empty")
		}

		return nil, errorchain.NewWithMessage(ErrScript, "parsing of script failed").CausedBy(err)
	}

	return d.decodeMap(rawScript)
}

func (d *Decoder) decodeMap(in map[string]any) (*Script, error) {
	var script Script

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &script,
		ErrorUnused:      true,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errorchain.NewWithMessage(ErrScript, "failed creating script decoder").CausedBy(err)
	}

	if err = dec.Decode(in); err != nil {
		return nil, errorchain.NewWithMessage(ErrScript, "decoding of script failed").CausedBy(err)
	}

	if err = d.validator.ValidateStruct(script); err != nil {
		return nil, errorchain.NewWithMessage(ErrScript, "script validation failed").CausedBy(err)
	}

	return &script, nil
}
