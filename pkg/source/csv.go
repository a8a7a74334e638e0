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
	"encoding/csv"
	"io"
	"strings"

	"github.com/walteh/csvjson/pkg/record"
	"gitlab.com/tozd/go/errors"
)

const bom = "\ufeff"

// 📄 CSVReader reads delimited text with a header row
type CSVReader struct {
	Comma rune // Field delimiter, zero means ','
}

// 📝 Read reads the header then every data row. Rows may be shorter or
// longer than the header; NewRow reconciles them.
func (c *CSVReader) Read(ctx context.Context, r io.Reader) ([]*record.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = orDefault(c.Comma, ',')
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []*record.Row{}, nil
	}
	if err != nil {
		return nil, errors.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], bom)

	rows := make([]*record.Row, 0, 128)
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record.NewRow(header, cells))
	}

	return rows, nil
}
