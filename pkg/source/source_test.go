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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/csvjson/pkg/record"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

func values(t *testing.T, row *record.Row) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, c := range row.Columns() {
		v, _ := row.Get(c)
		out[c] = v
	}
	return out
}

func TestCSVReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		comma rune
		want  []map[string]string
	}{
		{
			name:  "basic",
			input: "ID,Level,Creator\n1,Easy,abc\n2,Hard,def\n",
			want: []map[string]string{
				{"ID": "1", "Level": "Easy", "Creator": "abc"},
				{"ID": "2", "Level": "Hard", "Creator": "def"},
			},
		},
		{
			name:  "header_only",
			input: "ID,Level\n",
			want:  []map[string]string{},
		},
		{
			name:  "empty_file",
			input: "",
			want:  []map[string]string{},
		},
		{
			name:  "short_and_long_rows",
			input: "ID,Level,Creator\n1\n2,Hard,def,surplus\n",
			want: []map[string]string{
				{"ID": "1"},
				{"ID": "2", "Level": "Hard", "Creator": "def"},
			},
		},
		{
			name:  "quoted_fields",
			input: "ID,Level Code\n1,\"AA,11\"\n2,\"say \"\"hi\"\"\"\n",
			want: []map[string]string{
				{"ID": "1", "Level Code": "AA,11"},
				{"ID": "2", "Level Code": `say "hi"`},
			},
		},
		{
			name:  "bom_and_blank_lines",
			input: "\ufeffID,Level\n\n1,Easy\n\n",
			want: []map[string]string{
				{"ID": "1", "Level": "Easy"},
			},
		},
		{
			name:  "tab_delimited",
			input: "ID\tLevel\n1\tEasy\n",
			comma: '\t',
			want: []map[string]string{
				{"ID": "1", "Level": "Easy"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &CSVReader{Comma: tt.comma}
			rows, err := r.Read(context.Background(), strings.NewReader(tt.input))
			require.NoError(t, err)
			require.NotNil(t, rows)
			require.Len(t, rows, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, values(t, rows[i]), "row %d should match", i)
			}
		})
	}
}

func TestCSVReaderKeepsHeaderOrder(t *testing.T) {
	r := &CSVReader{}
	rows, err := r.Read(context.Background(), strings.NewReader("b,DATE,a\n1,2,3\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"b", "DATE", "a"}, rows[0].Columns())
}

func TestJSONReader(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []map[string]string
		errContains string
	}{
		{
			name:  "objects",
			input: `[{"ID": 7, "Level": "Easy", "Date": null, "Flag": true}, {"ID": "8", "Meta": {"a": 1}}]`,
			want: []map[string]string{
				{"ID": "7", "Level": "Easy", "Date": "", "Flag": "true"},
				{"ID": "8", "Meta": `{"a": 1}`},
			},
		},
		{
			name:  "empty_array",
			input: `[]`,
			want:  []map[string]string{},
		},
		{
			name:        "not_an_array",
			input:       `{"ID": 1}`,
			errContains: "expected a json array",
		},
		{
			name:        "scalar_item",
			input:       `[{"ID": 1}, 2]`,
			errContains: "item 1: expected an object",
		},
		{
			name:        "invalid",
			input:       `[{"ID": 1}`,
			errContains: "invalid json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := (&JSONReader{}).Read(context.Background(), strings.NewReader(tt.input))
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			require.Len(t, rows, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, values(t, rows[i]), "row %d should match", i)
			}
		})
	}
}

func TestJSONReaderKeepsKeyOrder(t *testing.T) {
	rows, err := (&JSONReader{}).Read(context.Background(), strings.NewReader(`[{"z": "1", "DATE": "2", "a": "3"}]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"z", "DATE", "a"}, rows[0].Columns())
}

func writeWorkbook(t *testing.T, sheet string, grid [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for r, cells := range grid {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXReader(t *testing.T) {
	path := writeWorkbook(t, "Levels", [][]any{
		{"ID", "Level", "Date"},
		{"1", "Easy", "2021-01-01"},
		{"2", "Hard"},
	})

	reader, err := ForPath(path, Options{})
	require.NoError(t, err)
	require.IsType(t, &XLSXReader{}, reader)

	rows, err := ReadFile(context.Background(), path, reader)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]string{"ID": "1", "Level": "Easy", "Date": "2021-01-01"}, values(t, rows[0]))
	assert.Equal(t, map[string]string{"ID": "2", "Level": "Hard"}, values(t, rows[1]))
}

func TestXLSXReaderUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{{"ID"}, {"1"}})

	_, err := ReadFile(context.Background(), path, &XLSXReader{Sheet: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `reading sheet "Missing"`)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		opts        Options
		want        Reader
		errContains string
	}{
		{name: "csv", path: "input.csv", want: &CSVReader{Comma: ','}},
		{name: "upper_ext", path: "INPUT.CSV", want: &CSVReader{Comma: ','}},
		{name: "tsv", path: "input.tsv", want: &CSVReader{Comma: '\t'}},
		{name: "csv_custom_delimiter", path: "input.csv", opts: Options{Delimiter: ';'}, want: &CSVReader{Comma: ';'}},
		{name: "xlsx_sheet", path: "book.xlsx", opts: Options{Sheet: "Data"}, want: &XLSXReader{Sheet: "Data"}},
		{name: "json", path: "rows.json", want: &JSONReader{}},
		{name: "explicit_format", path: "rows.dat", opts: Options{Format: "JSON"}, want: &JSONReader{}},
		{name: "unknown_ext", path: "rows.dat", errContains: "cannot infer input format"},
		{name: "unknown_format", path: "rows.csv", opts: Options{Format: "parquet"}, errContains: "unsupported input format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ForPath(tt.path, tt.opts)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), &CSVReader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "missing input should wrap os.ErrNotExist")
}

func TestIsFormat(t *testing.T) {
	assert.True(t, IsFormat("csv"))
	assert.True(t, IsFormat("XLSX"))
	assert.False(t, IsFormat("xml"))
	assert.False(t, IsFormat(""))
}
