package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/csvjson/cmd/csvjson/opts"
	"github.com/walteh/csvjson/pkg/log"
	"github.com/walteh/csvjson/pkg/operation"
	"github.com/walteh/csvjson/pkg/preview"
	"gitlab.com/tozd/go/errors"
)

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(o *opts.RootOpts) *cobra.Command {
	var limit int
	var inputFormat string

	cmd := &cobra.Command{
		Use:   "preview [input]",
		Short: "Show the first converted records as a table",
		Long: `Preview transforms the input like convert does but writes nothing.
The first --limit records are printed as a table with one column per output key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			cfg := *o.Config
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if inputFormat != "" {
				cfg.InputFormat = inputFormat
			}

			conv, err := operation.New(operation.Options{
				Config: &cfg,
				Logger: logger,
			})
			if err != nil {
				return errors.Errorf("creating converter: %w", err)
			}

			records, err := conv.Preview(ctx, cfg.Input, limit)
			if err != nil {
				return errors.Errorf("previewing %s: %w", cfg.Input, err)
			}

			if len(records) == 0 {
				logger.Warningf("%s has no records", cfg.Input)
				return nil
			}

			table, err := preview.Render(records, conv.Keys())
			if err != nil {
				return err
			}

			logger.Infof("first %d records of %s", len(records), cfg.Input)
			fmt.Fprintln(o.Console, table)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of records to show, 0 for all")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format (csv, tsv, xlsx, json)")

	return cmd
}
