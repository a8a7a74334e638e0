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

	"github.com/rs/zerolog"
	"github.com/walteh/csvjson/pkg/config"
	"github.com/walteh/csvjson/pkg/document"
	"github.com/walteh/csvjson/pkg/log"
	"github.com/walteh/csvjson/pkg/record"
	"github.com/walteh/csvjson/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the converter
type Options struct {
	// Config describes the mapping and formats
	Config *config.Config
	// Logger receives one line per file converted in a batch
	Logger *log.Logger
	// Reader overrides the reader picked from the input path, if set
	Reader source.Reader
}

// 🎮 Converter reads, transforms and writes record files
type Converter struct {
	config      *config.Config
	transformer *record.Transformer
	logger      *log.Logger
	reader      source.Reader
}

// 📋 Result summarizes one converted file
type Result struct {
	Input   string
	Output  string
	Format  document.Format
	Records int // Number of records in the written document
}

// 🏭 New creates a new converter with the given options
func New(opts Options) (*Converter, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}

	tr, err := opts.Config.Transformer()
	if err != nil {
		return nil, errors.Errorf("building transformer: %w", err)
	}

	return &Converter{
		config:      opts.Config,
		transformer: tr,
		logger:      opts.Logger,
		reader:      opts.Reader,
	}, nil
}

// Keys returns the keys of every output record, in order.
func (c *Converter) Keys() []string {
	return c.transformer.Keys()
}

func (c *Converter) read(ctx context.Context, input string) ([]*record.Row, error) {
	reader := c.reader
	if reader == nil {
		var err error
		reader, err = source.ForPath(input, c.config.SourceOptions())
		if err != nil {
			return nil, errors.Errorf("selecting reader: %w", err)
		}
	}
	return source.ReadFile(ctx, input, reader)
}

// 🎯 Convert reads the whole input, transforms every row and writes the
// document once. Nothing is written when reading fails.
func (c *Converter) Convert(ctx context.Context, input, output string) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("input", input).Str("output", output).Msg("converting")

	format, err := c.config.DocumentFormat(output)
	if err != nil {
		return nil, errors.Errorf("resolving output format: %w", err)
	}

	rows, err := c.read(ctx, input)
	if err != nil {
		return nil, err
	}

	records := c.transformer.TransformAll(rows)

	if err := document.WriteFile(ctx, output, format, records); err != nil {
		return nil, err
	}

	logger.Debug().Str("output", output).Int("records", len(records)).Msg("converted")

	return &Result{
		Input:   input,
		Output:  output,
		Format:  format,
		Records: len(records),
	}, nil
}

// 🔍 Preview transforms at most limit rows of input without writing
// anything. A limit of zero or less means all rows.
func (c *Converter) Preview(ctx context.Context, input string, limit int) ([]record.Record, error) {
	rows, err := c.read(ctx, input)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return c.transformer.TransformAll(rows), nil
}
