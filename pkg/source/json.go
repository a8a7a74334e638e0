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

	"github.com/tidwall/gjson"
	"github.com/walteh/csvjson/pkg/record"
	"gitlab.com/tozd/go/errors"
)

// 🧾 JSONReader reads a top-level array of flat objects.
// Object keys become columns in document order. Scalars are rendered as
// text, null as "", nested values as their raw JSON.
type JSONReader struct{}

func (j *JSONReader) Read(ctx context.Context, r io.Reader) ([]*record.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Errorf("reading json: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json document")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, errors.Errorf("expected a json array, got %s", doc.Type)
	}

	rows := make([]*record.Row, 0, 128)
	var itemErr error
	doc.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			itemErr = errors.Errorf("item %d: expected an object, got %s", len(rows), item.Type)
			return false
		}
		row := record.NewRow(nil, nil)
		item.ForEach(func(key, value gjson.Result) bool {
			row.Set(key.String(), value.String())
			return true
		})
		rows = append(rows, row)
		return true
	})
	if itemErr != nil {
		return nil, itemErr
	}

	return rows, nil
}
