// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/csvjson/pkg/document"
	"github.com/walteh/csvjson/pkg/record"
	"github.com/walteh/csvjson/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// 📂 Built-in paths, used when neither flags nor a config file set them
const (
	DefaultInput  = "input.csv"
	DefaultOutput = "output.json"
	DefaultPath   = ".csvjson.yaml"
)

// 🏷️ Extra field default types
const (
	TypeString = "string"
	TypeInt    = "int"
)

// 🔄 Field renames one input column to an output key
type Field struct {
	Column string `json:"column" yaml:"column" hcl:"column,label"`
	Key    string `json:"key" yaml:"key" hcl:"key"`
}

// ➕ Extra is an output key looked up case-insensitively in the input
// columns. Default is parsed according to Type.
type Extra struct {
	Key     string `json:"key" yaml:"key" hcl:"key,label"`
	Default string `json:"default,omitempty" yaml:"default,omitempty" hcl:"default,optional"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty" hcl:"type,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Input        string  `json:"input,omitempty" yaml:"input,omitempty" hcl:"input,optional"`
	Output       string  `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,optional"`
	InputFormat  string  `json:"input_format,omitempty" yaml:"input_format,omitempty" hcl:"input_format,optional"`
	OutputFormat string  `json:"output_format,omitempty" yaml:"output_format,omitempty" hcl:"output_format,optional"`
	Delimiter    string  `json:"delimiter,omitempty" yaml:"delimiter,omitempty" hcl:"delimiter,optional"`
	Sheet        string  `json:"sheet,omitempty" yaml:"sheet,omitempty" hcl:"sheet,optional"`
	Fields       []Field `json:"fields,omitempty" yaml:"fields,omitempty" hcl:"field,block"`
	Extras       []Extra `json:"extras,omitempty" yaml:"extras,omitempty" hcl:"extra,block"`

	location string
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
	}
	for _, f := range record.DefaultFieldMappings() {
		cfg.Fields = append(cfg.Fields, Field{Column: f.Column, Key: f.Key})
	}
	cfg.Extras = []Extra{
		{Key: "date", Type: TypeString},
		{Key: "post_id", Type: TypeString},
		{Key: "count", Default: "0", Type: TypeInt},
	}
	return cfg
}

// applyDefaults fills every section a config file left out.
func (cfg *Config) applyDefaults() {
	def := Default()
	if cfg.Input == "" {
		cfg.Input = def.Input
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = def.Fields
	}
	if len(cfg.Extras) == 0 {
		cfg.Extras = def.Extras
	}
	for i := range cfg.Extras {
		if cfg.Extras[i].Type == "" {
			cfg.Extras[i].Type = TypeString
		}
	}
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks if the configuration is valid
func Validate(ctx context.Context, cfg *Config) error {
	zerolog.Ctx(ctx).Debug().Str("location", cfg.location).Msg("validating config")

	if cfg.Input == "" {
		return errors.Errorf("input is required")
	}
	if cfg.Output == "" {
		return errors.Errorf("output is required")
	}
	if cfg.InputFormat != "" && !source.IsFormat(cfg.InputFormat) {
		return errors.Errorf("input_format %q is not supported", cfg.InputFormat)
	}
	if cfg.OutputFormat != "" {
		if _, err := document.ParseFormat(cfg.OutputFormat); err != nil {
			return errors.Errorf("output_format: %w", err)
		}
	}
	if cfg.Delimiter != "" && utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return errors.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	if len(cfg.Fields)+len(cfg.Extras) == 0 {
		return errors.Errorf("at least one field or extra is required")
	}

	seen := map[string]string{}
	claim := func(key, owner string) error {
		if key == "" {
			return errors.Errorf("%s: key is required", owner)
		}
		if prev, ok := seen[key]; ok {
			return errors.Errorf("%s: key %q already used by %s", owner, key, prev)
		}
		seen[key] = owner
		return nil
	}

	for i, f := range cfg.Fields {
		owner := fmt.Sprintf("fields[%d]", i)
		if f.Column == "" {
			return errors.Errorf("%s: column is required", owner)
		}
		if err := claim(f.Key, owner); err != nil {
			return err
		}
	}

	for i, e := range cfg.Extras {
		owner := fmt.Sprintf("extras[%d]", i)
		if err := claim(e.Key, owner); err != nil {
			return err
		}
		if e.Key != strings.ToLower(e.Key) {
			return errors.Errorf("%s: key %q must be lowercase", owner, e.Key)
		}
		if _, err := e.defaultValue(); err != nil {
			return errors.Errorf("%s: %w", owner, err)
		}
	}

	return nil
}

func (e Extra) defaultValue() (any, error) {
	switch e.Type {
	case "", TypeString:
		return e.Default, nil
	case TypeInt:
		if e.Default == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(e.Default))
		if err != nil {
			return nil, errors.Errorf("default %q is not an int: %w", e.Default, err)
		}
		return n, nil
	default:
		return nil, errors.Errorf("unknown type %q", e.Type)
	}
}

// 🔧 Transformer builds the record transformer described by the config
func (cfg *Config) Transformer() (*record.Transformer, error) {
	fields := make([]record.FieldMapping, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		fields = append(fields, record.FieldMapping{Column: f.Column, Key: f.Key})
	}

	extras := make([]record.ExtraField, 0, len(cfg.Extras))
	for _, e := range cfg.Extras {
		def, err := e.defaultValue()
		if err != nil {
			return nil, errors.Errorf("extra %q: %w", e.Key, err)
		}
		extras = append(extras, record.ExtraField{Key: e.Key, Default: def})
	}

	return record.NewTransformer(fields, extras), nil
}

// 📥 SourceOptions returns the reader options for the configured input
func (cfg *Config) SourceOptions() source.Options {
	opts := source.Options{
		Format: cfg.InputFormat,
		Sheet:  cfg.Sheet,
	}
	if r, _ := utf8.DecodeRuneInString(cfg.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	return opts
}

// 📤 DocumentFormat returns the output format for path
func (cfg *Config) DocumentFormat(path string) (document.Format, error) {
	if cfg.OutputFormat == "" {
		return document.FormatForPath(path), nil
	}
	return document.ParseFormat(cfg.OutputFormat)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (%d fields, %d extras)", cfg.Input, cfg.Output, len(cfg.Fields), len(cfg.Extras))
}
