// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for configuration files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown configuration format")

// Names lists the configuration file names searched by [Find], in order.
var Names = []string{".refescape.yaml", ".refescape.yml", ".refescape.json"}

// Find returns the path of the first configuration file in dir, if any.
func Find(dir string) (string, bool) {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, true
		}
	}

	return "", false
}

// Load reads the configuration file name. The format is selected by the file extension.
func Load(name string) (Settings, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Settings{}, err
	}

	s, err := Decode(bytes.NewReader(data), filepath.Ext(name))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", name, err)
	}

	return s, nil
}

// Decode reads settings in the format given by ext (".yaml", ".yml" or ".json").
func Decode(r io.Reader, ext string) (Settings, error) {
	var s Settings

	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, err
		}

	case ".json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()

		if err := dec.Decode(&s); err != nil {
			return Settings{}, err
		}

	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return s, nil
}
