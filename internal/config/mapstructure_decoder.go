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
	"reflect"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/dadrus/tst/internal/x/errorchain"
)

func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	// nolint: forcetypeassert
	level, err := zerolog.ParseLevel(strings.ToLower(data.(string)))
	if err != nil {
		return nil, errorchain.NewWithMessagef(ErrConfiguration, "unsupported log level %q", data).
			CausedBy(err)
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(LogTextFormat) {
		return data, nil
	}

	// nolint: forcetypeassert
	switch strings.ToLower(data.(string)) {
	case "text", "":
		return LogTextFormat, nil
	case "gelf":
		return LogGelfFormat, nil
	default:
		return nil, errorchain.NewWithMessagef(ErrConfiguration, "unsupported log format %q", data)
	}
}

func byteSizeDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(bytesize.ByteSize(0)) {
		return data, nil
	}

	// nolint: forcetypeassert
	size, err := bytesize.Parse(data.(string))
	if err != nil {
		return nil, errorchain.NewWithMessagef(ErrConfiguration, "invalid byte size %q", data).
			CausedBy(err)
	}

	return size, nil
}
