package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/csvjson/cmd/csvjson/commands"
	"github.com/walteh/csvjson/cmd/csvjson/opts"
	"github.com/walteh/csvjson/pkg/config"
	"github.com/walteh/csvjson/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are shared by every subcommand
type rootFlags struct {
	configFile string
	debug      bool
}

// newRootCmd creates the csvjson command tree. Without a subcommand it
// converts the configured input, which is input.csv -> output.json by default.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags
	rootOpts := &opts.RootOpts{Console: stdout}

	cmd := &cobra.Command{
		Use:   "csvjson [input] [output]",
		Short: "Convert tabular records into a JSON document",
		Long: `csvjson reads a CSV file, renames its columns and writes the rows
as one pretty-printed JSON array.

Columns and extra fields are configured in .csvjson.yaml (or .json, .hcl).
Without a config file the built-in level mapping is used.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(stderr, flags.debug)
			ctx := zlog.WithContext(cmd.Context())

			cfg, err := loadConfig(ctx, cmd, flags)
			if err != nil {
				return err
			}
			rootOpts.Config = cfg

			logger := log.NewWithZerolog(cmd.OutOrStdout(), zlog)
			cmd.SetContext(log.NewContext(ctx, logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunConvert(cmd.Context(), rootOpts, commands.ConvertFlags{}, args)
		},
	}

	addRootFlags(cmd, &flags)

	cmd.AddCommand(commands.NewConvertCmd(rootOpts))
	cmd.AddCommand(commands.NewPreviewCmd(rootOpts))
	cmd.AddCommand(newVersionCmd(stdout))

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

// loadConfig loads the config named by the flags. An explicit --config must
// exist; the default path is optional.
func loadConfig(ctx context.Context, cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadConfig(ctx, flags.configFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, flags.configFile)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Str("location", cfg.Location()).Msg("config loaded")

	return cfg, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultPath, "config file path")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging builds the diagnostic logger. Diagnostics go to stderr so
// stdout only carries command output.
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
