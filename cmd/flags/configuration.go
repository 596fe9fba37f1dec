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

package flags

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/tst/internal/config"
	"github.com/dadrus/tst/internal/validation"
)

// LoadConfiguration reads the configuration the global flags of cmd point to.
func LoadConfiguration(cmd *cobra.Command) (*config.Configuration, validation.Validator, error) {
	configPath, _ := cmd.Flags().GetString(Config)
	envPrefix, _ := cmd.Flags().GetString(EnvironmentConfigPrefix)

	validator, err := validation.NewValidator()
	if err != nil {
		return nil, nil, err
	}

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
	if err != nil {
		return nil, nil, err
	}

	return conf, validator, nil
}
