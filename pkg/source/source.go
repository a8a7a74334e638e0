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

package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/csvjson/pkg/record"
	"gitlab.com/tozd/go/errors"
)

// 📚 Input format names
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// 🔌 Reader reads a whole tabular input into rows
type Reader interface {
	// Read consumes r entirely and returns one row per record, in order
	Read(ctx context.Context, r io.Reader) ([]*record.Row, error)
}

// ⚙️ Options tune reader selection
type Options struct {
	Format    string // Explicit format, overrides the file extension
	Delimiter rune   // CSV delimiter, zero means the format default
	Sheet     string // XLSX sheet name, empty means the first sheet
}

// 🎯 ForPath returns the reader for a file, picked from opts.Format or the
// file extension
func ForPath(path string, opts Options) (Reader, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = formatForExt(filepath.Ext(path))
	}

	switch format {
	case FormatCSV:
		return &CSVReader{Comma: orDefault(opts.Delimiter, ',')}, nil
	case FormatTSV:
		return &CSVReader{Comma: orDefault(opts.Delimiter, '\t')}, nil
	case FormatXLSX:
		return &XLSXReader{Sheet: opts.Sheet}, nil
	case FormatJSON:
		return &JSONReader{}, nil
	case "":
		return nil, errors.Errorf("cannot infer input format of %q", path)
	default:
		return nil, errors.Errorf("unsupported input format %q", format)
	}
}

// IsFormat reports whether name is a known input format.
func IsFormat(name string) bool {
	switch strings.ToLower(name) {
	case FormatCSV, FormatTSV, FormatXLSX, FormatJSON:
		return true
	}
	return false
}

func formatForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".csv", ".txt":
		return FormatCSV
	case ".tsv", ".tab":
		return FormatTSV
	case ".xlsx":
		return FormatXLSX
	case ".json":
		return FormatJSON
	}
	return ""
}

func orDefault(r, def rune) rune {
	if r == 0 {
		return def
	}
	return r
}

// 📂 ReadFile opens path and reads it with reader.
// A missing file is reported with an error wrapping os.ErrNotExist.
func ReadFile(ctx context.Context, path string, reader Reader) ([]*record.Row, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("reading input")

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	rows, err := reader.Read(ctx, f)
	if err != nil {
		return nil, errors.Errorf("reading input %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Int("rows", len(rows)).Msg("input read")
	return rows, nil
}
