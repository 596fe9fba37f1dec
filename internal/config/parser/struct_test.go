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

package parser

import (
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoanfFromStruct(t *testing.T) {
	t.Parallel()

	type configWithUppercase struct {
		ThisIsMissingAKoanfTag string
	}

	for _, tc := range []struct {
		uc     string
		conf   any
		assert func(t *testing.T, err error, konf *koanf.Koanf)
	}{
		{
			uc:   "missing koanf tag",
			conf: configWithUppercase{ThisIsMissingAKoanfTag: "don't care"},
			assert: func(t *testing.T, err error, _ *koanf.Koanf) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrConfigSource)
				assert.Contains(t, err.Error(),
					"field ThisIsMissingAKoanfTag does not have lowercase key, use the `koanf` tag")
			},
		},
		{
			uc: "successful",
			conf: testConfig{
				SomeString: "foo",
				SomeInt:    42,
				Nested:     testNestedConfig{SomeBool: true},
			},
			assert: func(t *testing.T, err error, konf *koanf.Koanf) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "foo", konf.Get("some_string"))
				assert.Equal(t, 42, konf.Get("someint"))
				assert.Equal(t, true, konf.Get("nested.somebool"))
				assert.Empty(t, konf.Get("nested.some_string"))
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			konf, err := koanfFromStruct(tc.conf)

			// THEN
			tc.assert(t, err, konf)
		})
	}
}
