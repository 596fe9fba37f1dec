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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/tst/internal/validation"
)

func TestNewConfiguration(t *testing.T) {
	validator, err := validation.NewValidator()
	require.NoError(t, err)

	for _, tc := range []struct {
		uc     string
		config string
		env    map[string]string
		assert func(t *testing.T, err error, conf *Configuration)
	}{
		{
			uc: "defaults only",
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, defaultConfig().Verify, conf.Verify)
				assert.Equal(t, zerolog.InfoLevel, conf.Log.Level)
				assert.Equal(t, LogTextFormat, conf.Log.Format)
				assert.False(t, conf.Metrics.Enabled)
				assert.Empty(t, conf.Source())
			},
		},
		{
			uc: "values from file and environment",
			config: `
log:
  level: debug
  format: gelf
verify:
  trials: 50
  alphabet: ab
  max_memory: 64KB
metrics:
  enabled: true
`,
			env: map[string]string{
				"CONFTEST_VERIFY_TRIALS":           "75",
				"CONFTEST_VERIFY_DELETE__RATIO":    "0.1",
				"CONFTEST_VERIFY_MAX__KEY__LENGTH": "8",
			},
			assert: func(t *testing.T, err error, conf *Configuration) {
				t.Helper()

				require.NoError(t, err)
				assert.NotEmpty(t, conf.Source())
				assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
				assert.Equal(t, LogGelfFormat, conf.Log.Format)
				assert.Equal(t, 75, conf.Verify.Trials)
				assert.Equal(t, 8, conf.Verify.MaxKeyLength)
				assert.Equal(t, "ab", conf.Verify.Alphabet)
				assert.InDelta(t, 0.1, conf.Verify.DeleteRatio, 0.0001)
				assert.Equal(t, defaultMaxValue, conf.Verify.MaxValue)
				assert.Equal(t, 64*bytesize.KB, conf.Verify.MaxMemory)
				assert.True(t, conf.Metrics.Enabled)
			},
		},
		{
			uc:     "unsupported log level",
			config: "log:\n  level: chatty\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrConfiguration)
				assert.Contains(t, err.Error(), "chatty")
			},
		},
		{
			uc:     "unsupported log format",
			config: "log:\n  format: xml\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrConfiguration)
				assert.Contains(t, err.Error(), "xml")
			},
		},
		{
			uc:     "invalid verify settings",
			config: "verify:\n  trials: 0\n  delete_ratio: 1.5\n",
			assert: func(t *testing.T, err error, _ *Configuration) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrConfiguration)
				assert.Contains(t, err.Error(), "'trials' must be greater than 0")
				assert.Contains(t, err.Error(), "'delete_ratio' must be 1 or less")
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			var configFile string

			if len(tc.config) != 0 {
				configFile = filepath.Join(t.TempDir(), "tst.yaml")
				require.NoError(t, os.WriteFile(configFile, []byte(tc.config), 0o600))
			}

			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			// WHEN
			conf, err := NewConfiguration("CONFTEST_", ConfigurationPath(configFile), validator)

			// THEN
			tc.assert(t, err, conf)
		})
	}
}

func TestLogFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", LogTextFormat.String())
	assert.Equal(t, "gelf", LogGelfFormat.String())
}
