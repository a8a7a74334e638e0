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
	"strings"
)

// 🔄 FieldMapping renames an input column to an output key
type FieldMapping struct {
	Column string // Input column name, matched exactly
	Key    string // Output key
}

// ➕ ExtraField is an output key filled from any column whose lowercased
// name equals Key, or from Default
type ExtraField struct {
	Key     string // Lowercase output key
	Default any    // Used when no column matches or the match is empty
}

// 🗺️ DefaultFieldMappings returns the built-in column renames
func DefaultFieldMappings() []FieldMapping {
	return []FieldMapping{
		{Column: "ID", Key: "id"},
		{Column: "Rank", Key: "rank"},
		{Column: "Level", Key: "label"},
		{Column: "Creator", Key: "username"},
		{Column: "Project", Key: "project"},
		{Column: "Difficulty", Key: "difficulty"},
		{Column: "Level Code", Key: "code"},
	}
}

// ➕ DefaultExtraFields returns the built-in extra fields
func DefaultExtraFields() []ExtraField {
	return []ExtraField{
		{Key: "date", Default: ""},
		{Key: "post_id", Default: ""},
		{Key: "count", Default: 0},
	}
}

// 🔧 Transformer turns input rows into output records
type Transformer struct {
	fields []FieldMapping
	extras []ExtraField
}

// 🏭 NewTransformer creates a transformer. Both slices are copied.
func NewTransformer(fields []FieldMapping, extras []ExtraField) *Transformer {
	t := &Transformer{
		fields: make([]FieldMapping, len(fields)),
		extras: make([]ExtraField, len(extras)),
	}
	copy(t.fields, fields)
	copy(t.extras, extras)
	return t
}

// NewDefaultTransformer uses DefaultFieldMappings and DefaultExtraFields.
func NewDefaultTransformer() *Transformer {
	return NewTransformer(DefaultFieldMappings(), DefaultExtraFields())
}

// Keys returns the output keys every record will carry, in order.
func (t *Transformer) Keys() []string {
	keys := make([]string, 0, len(t.fields)+len(t.extras))
	for _, f := range t.fields {
		keys = append(keys, f.Key)
	}
	for _, e := range t.extras {
		keys = append(keys, e.Key)
	}
	return keys
}

// 🎯 Transform maps one row to one record. Absent values never fail, they
// resolve to "" for mapped fields and to the default for extra fields.
func (t *Transformer) Transform(row *Row) Record {
	rec := Record{fields: make([]Field, 0, len(t.fields)+len(t.extras))}

	for _, f := range t.fields {
		value, _ := row.Get(f.Column)
		rec.set(f.Key, value)
	}

	for _, e := range t.extras {
		found := ""
		for _, col := range row.columns {
			if strings.ToLower(col) == e.Key {
				found = row.values[col]
				break
			}
		}
		// an empty match counts as missing
		if found != "" {
			rec.set(e.Key, found)
		} else {
			rec.set(e.Key, e.Default)
		}
	}

	return rec
}

// 📦 TransformAll maps rows to records one to one, keeping their order
func (t *Transformer) TransformAll(rows []*Row) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, t.Transform(row))
	}
	return out
}
