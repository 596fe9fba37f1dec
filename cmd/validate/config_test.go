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

package validate

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/tst/cmd/flags"
	"github.com/dadrus/tst/internal/config"
	"github.com/dadrus/tst/internal/x/testsupport"
)

func newConfigCommand(t *testing.T, confFile string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := NewValidateConfigCommand()
	flags.RegisterGlobalFlags(cmd)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	args := []string{"--" + flags.EnvironmentConfigPrefix, "VALIDATETEST_"}
	if len(confFile) != 0 {
		args = append(args, "--"+flags.Config, confFile)
	}

	require.NoError(t, cmd.ParseFlags(args))

	return cmd, buf
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		confFile string
		expError error
	}{
		{uc: "no config provided", expError: ErrNoConfigFile},
		{uc: "config file does not exist", confFile: "doesnotexist.yaml", expError: os.ErrNotExist},
		{uc: "invalid config", confFile: "test_data/invalid-config.yaml", expError: config.ErrConfiguration},
		{uc: "valid config", confFile: "test_data/config.yaml"},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			cmd, _ := newConfigCommand(t, tc.confFile)

			// WHEN
			err := validateConfig(cmd)

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRunValidateConfigCommand(t *testing.T) {
	for _, tc := range []struct {
		uc       string
		confFile string
		expError string
	}{
		{uc: "invalid config", confFile: "test_data/invalid-config.yaml", expError: "'trials' must be greater than 0"},
		{uc: "valid config", confFile: "test_data/config.yaml"},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			exit, err := testsupport.PatchOSExit(t, func(int) {})
			require.NoError(t, err)

			cmd, buf := newConfigCommand(t, tc.confFile)

			// WHEN
			cmd.Run(cmd, []string{})

			// THEN
			log := buf.String()
			if len(tc.expError) != 0 {
				assert.Contains(t, log, tc.expError)
				assert.True(t, exit.Called)
				assert.Equal(t, 1, exit.Code)
			} else {
				assert.Contains(t, log, "Configuration is valid")
				assert.False(t, exit.Called)
			}
		})
	}
}
