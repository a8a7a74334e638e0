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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/csvjson/pkg/record"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// 📊 XLSXReader reads one worksheet of an Excel workbook
type XLSXReader struct {
	Sheet string // Worksheet name, empty means the first sheet
}

// 📝 Read uses the first row of the sheet as the header. Blank rows are
// skipped the same way the CSV reader skips empty lines.
func (x *XLSXReader) Read(ctx context.Context, r io.Reader) ([]*record.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	zerolog.Ctx(ctx).Debug().Str("sheet", sheet).Msg("reading worksheet")

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Errorf("reading sheet %q: %w", sheet, err)
	}

	rows := make([]*record.Row, 0, len(grid))
	if len(grid) == 0 {
		return rows, nil
	}

	header := grid[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	for _, cells := range grid[1:] {
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, record.NewRow(header, cells))
	}

	return rows, nil
}
