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

package operation

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/csvjson/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📦 ConvertGlob converts every file matching pattern into outDir, one file
// after another. Output paths keep the matched file's location relative to
// the pattern's base directory. The first failure stops the batch; results
// converted before it are returned with the error.
func (c *Converter) ConvertGlob(ctx context.Context, pattern, outDir string) ([]*Result, error) {
	logger := zerolog.Ctx(ctx)

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("matching %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no files match %q", pattern)
	}
	sort.Strings(matches)

	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)

	format, err := c.config.DocumentFormat("")
	if err != nil {
		return nil, errors.Errorf("resolving output format: %w", err)
	}

	logger.Debug().Str("pattern", pattern).Int("files", len(matches)).Msg("batch conversion")

	results := make([]*Result, 0, len(matches))
	for _, input := range matches {
		rel, err := filepath.Rel(base, input)
		if err != nil {
			rel = filepath.Base(input)
		}
		output := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+format.Ext())

		if same, err := samePath(input, output); err != nil {
			return results, err
		} else if same {
			return results, errors.Errorf("output %s would overwrite its input", output)
		}

		res, err := c.Convert(ctx, input, output)
		if err != nil {
			return results, errors.Errorf("converting %s: %w", input, err)
		}
		results = append(results, res)

		c.logger.LogConversion(ctx, log.Conversion{
			Input:   res.Input,
			Output:  res.Output,
			Format:  string(res.Format),
			Records: res.Records,
		})
		if res.Records == 0 {
			c.logger.Warningf("%s has no records", input)
		}
	}

	return results, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, errors.Errorf("resolving %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, errors.Errorf("resolving %s: %w", b, err)
	}
	return absA == absB, nil
}

// Total sums the records written across results.
func Total(results []*Result) int {
	n := 0
	for _, r := range results {
		n += r.Records
	}
	return n
}
