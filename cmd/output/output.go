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

package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Write renders result to out in the given format. text is used for the
// human readable representation.
func Write(out io.Writer, format string, result any, text func(out io.Writer)) error {
	switch format {
	case "json":
		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, string(raw))

		return err
	case "yaml":
		// yaml.v3 does not know json tags, so the json representation is
		// converted to keep the property names aligned
		raw, err := json.Marshal(result)
		if err != nil {
			return err
		}

		var structured any
		if err = yaml.Unmarshal(raw, &structured); err != nil {
			return err
		}

		enc := yaml.NewEncoder(out)
		enc.SetIndent(2) // nolint: mnd

		if err = enc.Encode(structured); err != nil {
			return err
		}

		return enc.Close()
	case "text", "":
		text(out)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
