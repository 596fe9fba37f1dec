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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/tst/internal/script"
	"github.com/dadrus/tst/internal/x/testsupport"
)

func TestValidateScript(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc         string
		scriptFile string
		expError   error
	}{
		{uc: "script file does not exist", scriptFile: "doesnotexist.yaml", expError: os.ErrNotExist},
		{uc: "invalid script", scriptFile: "test_data/invalid-script.yaml", expError: script.ErrScript},
		{uc: "valid script", scriptFile: "test_data/script.yaml"},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			scr, err := validateScript(tc.scriptFile)

			// THEN
			if tc.expError != nil {
				require.ErrorIs(t, err, tc.expError)
				assert.Nil(t, scr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "overwrite", scr.Name)
				assert.Len(t, scr.Operations, 3)
			}
		})
	}
}

func TestRunValidateScriptCommand(t *testing.T) {
	for _, tc := range []struct {
		uc         string
		scriptFile string
		expOutput  string
		expExit    bool
	}{
		{
			uc:         "invalid script",
			scriptFile: "test_data/invalid-script.yaml",
			expOutput:  "script validation failed",
			expExit:    true,
		},
		{
			uc:         "valid script",
			scriptFile: "test_data/script.yaml",
			expOutput:  `Script "overwrite" with 3 operations is valid`,
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			exit, err := testsupport.PatchOSExit(t, func(int) {})
			require.NoError(t, err)

			cmd := NewValidateScriptCommand()

			buf := &bytes.Buffer{}
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			// WHEN
			cmd.Run(cmd, []string{tc.scriptFile})

			// THEN
			assert.Contains(t, buf.String(), tc.expOutput)
			assert.Equal(t, tc.expExit, exit.Called)
		})
	}
}
