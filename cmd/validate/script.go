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
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/tst/internal/script"
	"github.com/dadrus/tst/internal/validation"
)

// NewValidateScriptCommand represents the "validate script" command.
func NewValidateScriptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "script [script file]",
		Short:   "Validates a script without running it",
		Example: "tst validate script scenario.yaml",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			scr, err := validateScript(args[0])
			if err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)

				return
			}

			cmd.Printf("Script %q with %d operations is valid\n", scr.Name, len(scr.Operations))
		},
	}
}

func validateScript(path string) (*script.Script, error) {
	validator, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	return script.NewDecoder(validator).Decode(file)
}
