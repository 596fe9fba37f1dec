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

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/tst/cmd/flags"
	"github.com/dadrus/tst/version"
)

func TestRootCmd(t *testing.T) {
	t.Parallel()

	// THEN
	assert.Equal(t, "tst", RootCmd.Use)
	assert.Equal(t, version.Version, RootCmd.Version)

	configFlag := RootCmd.PersistentFlags().Lookup(flags.Config)
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	names := make([]string, 0, len(RootCmd.Commands()))
	for _, cmd := range RootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Subset(t, names, []string{"demo", "run", "validate", "verify"})
}

func TestNewValidateCmd(t *testing.T) {
	t.Parallel()

	// WHEN
	cmd := newValidateCmd()

	// THEN
	assert.Equal(t, "validate", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	commands := cmd.Commands()
	require.Len(t, commands, 2)
	assert.Equal(t, "config", commands[0].Name())
	assert.Equal(t, "script", commands[1].Name())
}

func TestDemoThroughRootCmd(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs([]string{"demo", "--" + flags.EnvironmentConfigPrefix, "ROOTTEST_", "-o", "yaml"})

	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	// WHEN
	err := RootCmd.Execute()

	// THEN
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name: hello")
	assert.Contains(t, buf.String(), "failures: 0")
}
