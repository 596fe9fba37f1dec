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
	"github.com/dadrus/tst/internal/config/parser"
	"github.com/dadrus/tst/internal/validation"
	"github.com/dadrus/tst/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Log     LoggingConfig `koanf:"log"`
	Verify  VerifyConfig  `koanf:"verify"`
	Metrics MetricsConfig `koanf:"metrics"`

	// source is the config file the values have been read from, if any
	source string
}

// Source returns the path of the file the configuration has been loaded from
// or an empty string if only defaults and environment variables were used.
func (c *Configuration) Source() string { return c.source }

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	result := defaultConfig()

	loader := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithDefaultConfigFilename("tst.yaml"),
		parser.WithConfigFile(string(configFile)),
		parser.WithConfigLookupDir("."),
		parser.WithEnvPrefix(string(envPrefix)),
	)

	if err := loader.Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(ErrConfiguration, "failed loading configuration").
			CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(ErrConfiguration, "configuration is invalid").
			CausedBy(err)
	}

	result.source = loader.ConfigFile()

	return &result, nil
}
