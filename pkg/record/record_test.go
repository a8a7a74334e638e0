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

package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewRow(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		cells   []string
		columns []string
		values  map[string]string
	}{
		{
			name:    "exact",
			header:  []string{"ID", "Level"},
			cells:   []string{"1", "Easy"},
			columns: []string{"ID", "Level"},
			values:  map[string]string{"ID": "1", "Level": "Easy"},
		},
		{
			name:    "short_row",
			header:  []string{"ID", "Level", "Creator"},
			cells:   []string{"1"},
			columns: []string{"ID"},
			values:  map[string]string{"ID": "1"},
		},
		{
			name:    "long_row",
			header:  []string{"ID"},
			cells:   []string{"1", "surplus", "more"},
			columns: []string{"ID"},
			values:  map[string]string{"ID": "1"},
		},
		{
			name:    "duplicate_header",
			header:  []string{"ID", "Level", "ID"},
			cells:   []string{"1", "Easy", "2"},
			columns: []string{"ID", "Level"},
			values:  map[string]string{"ID": "2", "Level": "Easy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewRow(tt.header, tt.cells)
			assert.Equal(t, tt.columns, row.Columns(), "columns should match")
			assert.Equal(t, len(tt.columns), row.Len())
			for k, want := range tt.values {
				got, ok := row.Get(k)
				require.True(t, ok, "column %s should be present", k)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestRecordMarshalJSON(t *testing.T) {
	rec := NewRecord(
		Field{Key: "z", Value: "last<>&"},
		Field{Key: "a", Value: 0},
		Field{Key: "m", Value: ""},
	)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last\u003c\u003e\u0026","a":0,"m":""}`, string(data), "json.Marshal escapes html on its own")

	raw, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last<>&","a":0,"m":""}`, string(raw), "keys should keep insertion order")
}

func TestRecordMarshalYAML(t *testing.T) {
	rec := NewRecord(
		Field{Key: "id", Value: "7"},
		Field{Key: "count", Value: 0},
		Field{Key: "date", Value: ""},
	)

	data, err := yaml.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, "id: \"7\"\ncount: 0\ndate: \"\"\n", string(data))
}

func TestNewRecordOverwritesDuplicateKeys(t *testing.T) {
	rec := NewRecord(Field{Key: "a", Value: 1}, Field{Key: "b", Value: 2}, Field{Key: "a", Value: 3})

	assert.Equal(t, []string{"a", "b"}, rec.Keys())
	v, _ := rec.Get("a")
	assert.Equal(t, 3, v)
}
