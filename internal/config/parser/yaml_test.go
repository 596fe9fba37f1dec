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
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoanfFromYaml(t *testing.T) {
	for _, tc := range []struct {
		uc     string
		config string
		assert func(t *testing.T, err error, konf *koanf.Koanf)
	}{
		{
			uc: "valid content",
			config: `
log:
  level: debug
verify:
  trials: 10
  alphabet: abc
`,
			assert: func(t *testing.T, err error, konf *koanf.Koanf) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "debug", konf.Get("log.level"))
				assert.Equal(t, 10, konf.Int("verify.trials"))
				assert.Equal(t, "abc", konf.Get("verify.alphabet"))
			},
		},
		{
			uc: "content with environment variables",
			config: `
log:
  level: ${YAMLTEST_LEVEL}
  format: ${YAMLTEST_FORMAT:-gelf}
`,
			assert: func(t *testing.T, err error, konf *koanf.Koanf) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "warn", konf.Get("log.level"))
				assert.Equal(t, "gelf", konf.Get("log.format"))
			},
		},
		{
			uc:     "invalid content",
			config: "foobar",
			assert: func(t *testing.T, err error, _ *koanf.Koanf) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrConfigSource)
				assert.Contains(t, err.Error(), "failed to load")
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			t.Setenv("YAMLTEST_LEVEL", "warn")

			fileName := writeConfigFile(t, t.TempDir(), "config.yaml", tc.config)

			// WHEN
			konf, err := koanfFromYaml(fileName)

			// THEN
			tc.assert(t, err, konf)
		})
	}
}

func TestKoanfFromYamlMissingFile(t *testing.T) {
	t.Parallel()

	// WHEN
	_, err := koanfFromYaml(filepath.Join(t.TempDir(), "missing.yaml"))

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConfigSource)
	assert.Contains(t, err.Error(), "failed to read")
}
