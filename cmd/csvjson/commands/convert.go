package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/csvjson/cmd/csvjson/opts"
	"github.com/walteh/csvjson/pkg/config"
	"github.com/walteh/csvjson/pkg/log"
	"github.com/walteh/csvjson/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// ConvertFlags override the loaded configuration for one run
type ConvertFlags struct {
	InputFormat  string
	OutputFormat string
	Delimiter    string
	Sheet        string
	Glob         string
	OutDir       string
}

// NewConvertCmd creates a new convert command
func NewConvertCmd(o *opts.RootOpts) *cobra.Command {
	var flags ConvertFlags

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a record file into a JSON or YAML document",
		Long: `Convert reads a tabular record file and writes one document.
It will:
1. Read every row of the input (CSV, TSV, XLSX or a JSON array)
2. Rename the mapped columns and add the extra fields
3. Write all records as one JSON (or YAML) array
4. Report how many records were converted

With --glob, every matching file is converted into --out-dir.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunConvert(cmd.Context(), o, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.InputFormat, "input-format", "", "input format (csv, tsv, xlsx, json), inferred from the extension by default")
	cmd.Flags().StringVar(&flags.OutputFormat, "output-format", "", "output format (json, yaml), inferred from the extension by default")
	cmd.Flags().StringVar(&flags.Delimiter, "delimiter", "", "CSV field delimiter")
	cmd.Flags().StringVar(&flags.Sheet, "sheet", "", "XLSX sheet to read, the first sheet by default")
	cmd.Flags().StringVar(&flags.Glob, "glob", "", "convert every file matching this pattern (supports **)")
	cmd.Flags().StringVar(&flags.OutDir, "out-dir", ".", "output directory for --glob")

	return cmd
}

// RunConvert converts the configured input, or every file matched by
// flags.Glob, and prints the number of converted records.
func RunConvert(ctx context.Context, o *opts.RootOpts, flags ConvertFlags, args []string) error {
	ctx = zerolog.Ctx(ctx).With().Str("command", "convert").Logger().WithContext(ctx)
	logger := log.FromContext(ctx)

	cfg := *o.Config
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
	if flags.InputFormat != "" {
		cfg.InputFormat = flags.InputFormat
	}
	if flags.OutputFormat != "" {
		cfg.OutputFormat = flags.OutputFormat
	}
	if flags.Delimiter != "" {
		cfg.Delimiter = flags.Delimiter
	}
	if flags.Sheet != "" {
		cfg.Sheet = flags.Sheet
	}

	if err := config.Validate(ctx, &cfg); err != nil {
		return errors.Errorf("validating options: %w", err)
	}

	conv, err := operation.New(operation.Options{
		Config: &cfg,
		Logger: logger,
	})
	if err != nil {
		return errors.Errorf("creating converter: %w", err)
	}

	if flags.Glob != "" {
		logger.Header("converting " + flags.Glob)
		results, err := conv.ConvertGlob(ctx, flags.Glob, flags.OutDir)
		if err != nil {
			return errors.Errorf("converting batch: %w", err)
		}
		logger.Done(operation.Total(results))
		return nil
	}

	res, err := conv.Convert(ctx, cfg.Input, cfg.Output)
	if err != nil {
		return errors.Errorf("converting %s: %w", cfg.Input, err)
	}

	logger.Done(res.Records)
	return nil
}
