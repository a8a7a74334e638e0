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

// 📥 Row is one input record: column name to string value, in header order
type Row struct {
	columns []string
	values  map[string]string
}

// 🏭 NewRow pairs header names with cells.
// Cells past the end of the header are dropped, header names past the end of
// the cells are absent from the row. A repeated header name keeps its first
// position and its last value.
func NewRow(header []string, cells []string) *Row {
	r := &Row{
		columns: make([]string, 0, len(header)),
		values:  make(map[string]string, len(header)),
	}
	for i, name := range header {
		if i >= len(cells) {
			break
		}
		r.Set(name, cells[i])
	}
	return r
}

// 📝 Set assigns a column value, appending the column if it is new
func (r *Row) Set(column, value string) {
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// 🔍 Get returns the value of a column and whether the column is present
func (r *Row) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Columns returns the column names in header order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of columns present.
func (r *Row) Len() int {
	return len(r.columns)
}
