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

// Package preview renders transformed records as a console table
package preview

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/walteh/csvjson/pkg/record"
	"gitlab.com/tozd/go/errors"
)

// 🖼️ Rows builds the table data: a header of keys, then one line per record
func Rows(records []record.Record, keys []string) pterm.TableData {
	data := make(pterm.TableData, 0, len(records)+1)
	header := make([]string, len(keys))
	copy(header, keys)
	data = append(data, header)

	for _, rec := range records {
		line := make([]string, len(keys))
		for i, k := range keys {
			if v, ok := rec.Get(k); ok {
				line[i] = fmt.Sprint(v)
			}
		}
		data = append(data, line)
	}
	return data
}

// 📊 Render returns records as a boxed pterm table
func Render(records []record.Record, keys []string) (string, error) {
	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(Rows(records, keys)).
		Srender()
	if err != nil {
		return "", errors.Errorf("rendering table: %w", err)
	}
	return out, nil
}
