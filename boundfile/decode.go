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

package boundfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/refescape/bound"
)

type rawFile struct {
	Name       string               `yaml:"name"`
	Generated  bool                 `yaml:"generated"`
	Directives []string             `yaml:"directives"`
	Types      map[string]rawType   `yaml:"types"`
	Fields     map[string]rawField  `yaml:"fields"`
	Members    map[string]rawMember `yaml:"members"`
	Methods    []yaml.Node          `yaml:"methods"`
}

type rawType struct {
	Kind      string   `yaml:"kind"`
	ReadOnly  bool     `yaml:"readonly"`
	RefFields bool     `yaml:"ref-fields"`
	Elem      string   `yaml:"elem"`
	Args      []string `yaml:"args"`
}

type rawField struct {
	Type   string `yaml:"type"`
	Static bool   `yaml:"static"`
	Ref    string `yaml:"ref"`
}

type rawParam struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Ref     string `yaml:"ref"`
	Scoped  bool   `yaml:"scoped"`
	Default bool   `yaml:"default"`
}

type rawMember struct {
	Kind      string     `yaml:"kind"`
	Name      string     `yaml:"name"`
	Static    bool       `yaml:"static"`
	ReadOnly  bool       `yaml:"readonly"`
	Returns   string     `yaml:"returns"`
	RefReturn string     `yaml:"ref-return"`
	Params    []rawParam `yaml:"params"`
}

// Decode reads a bound file from r. The name is used for positions in errors and
// as the file name unless the document sets one.
//
// A file may consist of several YAML documents. Declarations of earlier documents
// are visible in later ones.
func Decode(r io.Reader, name string) (*bound.File, error) {
	return NewDecoder().Decode(r, name)
}

// Decoder decodes bound files sharing their declarations.
// A Decoder must not be used after it returned an error.
type Decoder struct {
	d *decoder
}

// NewDecoder creates a [Decoder] knowing only the predefined types.
func NewDecoder() *Decoder {
	return &Decoder{d: newDecoder("")}
}

// Decode reads a bound file from r, resolving names against the declarations of
// all files decoded before.
func (dec *Decoder) Decode(r io.Reader, name string) (*bound.File, error) {
	d := dec.d
	d.name = name

	y := yaml.NewDecoder(r)
	y.KnownFields(true)

	file := &bound.File{Name: name}

	for {
		var raw rawFile
		if err := y.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%s: %w: %w", name, ErrSyntax, err)
		}

		d.declare(&raw)

		if raw.Name != "" {
			file.Name = raw.Name
		}

		file.Generated = file.Generated || raw.Generated
		file.Directives = append(file.Directives, raw.Directives...)

		for i := range raw.Methods {
			if m := d.method(&raw.Methods[i]); m != nil {
				file.Methods = append(file.Methods, m)
			}
		}

		if d.err != nil {
			return nil, d.err
		}
	}

	return file, nil
}

// ReadFile reads the named bound file.
func ReadFile(name string) (*bound.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, name)
}

// Load reads the named files concurrently into a compilation, in argument order.
func Load(ctx context.Context, names ...string) (*bound.Compilation, error) {
	files := make([]*bound.File, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := ReadFile(name)
			if err != nil {
				return err
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &bound.Compilation{Files: files}, nil
}

// Extensions lists the file name suffixes of bound files.
var Extensions = []string{".bound.yaml", ".bound.yml", ".bound.json"}

// IsBoundFile reports whether name has one of the [Extensions].
func IsBoundFile(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// Expand replaces directories in paths by the bound files they contain, recursively.
func Expand(paths []string) ([]string, error) {
	var names []string

	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			names = append(names, path)

			continue
		}

		err = filepath.WalkDir(path, func(name string, de os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !de.IsDir() && IsBoundFile(name) {
				names = append(names, name)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return names, nil
}
