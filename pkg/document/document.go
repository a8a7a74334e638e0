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

// Package document serializes output records into a single document
package document

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/csvjson/pkg/record"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📄 Format is an output document format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const indent = 2

// 🔍 ParseFormat resolves a format name; "yml" is accepted for YAML
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.Errorf("unsupported output format %q", name)
}

// FormatForPath picks the format from the file extension, JSON by default.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// 📝 Encode writes records as one array document
func Encode(w io.Writer, format Format, records []record.Record) error {
	if records == nil {
		records = []record.Record{}
	}

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(records); err != nil {
			return errors.Errorf("encoding json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		if err := enc.Encode(records); err != nil {
			return errors.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return errors.Errorf("closing yaml encoder: %w", err)
		}
	default:
		return errors.Errorf("unsupported output format %q", format)
	}

	return nil
}

// 💾 WriteFile writes the document to path in one go, creating parent
// directories. Failures are returned as-is, nothing is retried.
func WriteFile(ctx context.Context, path string, format Format, records []record.Record) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Str("format", string(format)).Int("records", len(records)).Msg("writing document")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf("creating output %s: %w", path, err)
	}

	if err := Encode(f, format, records); err != nil {
		f.Close()
		return errors.Errorf("writing output %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing output %s: %w", path, err)
	}

	return nil
}
