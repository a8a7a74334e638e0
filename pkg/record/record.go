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
	"bytes"
	"encoding/json"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🏷️ Field is one key/value pair of an output record
type Field struct {
	Key   string
	Value any
}

// 📤 Record is one output record with its keys kept in insertion order
type Record struct {
	fields []Field
}

// 🏭 NewRecord creates a record from fields, in the given order
func NewRecord(fields ...Field) Record {
	rec := Record{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		rec.set(f.Key, f.Value)
	}
	return rec
}

func (r *Record) set(key string, value any) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// 🔍 Get returns the value stored under key
func (r Record) Get(key string) (any, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the record keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// 📝 MarshalJSON writes the record as a JSON object with keys in record order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(f.Key); err != nil {
			return nil, errors.Errorf("encoding key %q: %w", f.Key, err)
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(f.Value); err != nil {
			return nil, errors.Errorf("encoding value of %q: %w", f.Key, err)
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// 📝 MarshalYAML returns a mapping node with keys in record order
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r.fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}
		value := &yaml.Node{}
		if err := value.Encode(f.Value); err != nil {
			return nil, errors.Errorf("encoding value of %q: %w", f.Key, err)
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
