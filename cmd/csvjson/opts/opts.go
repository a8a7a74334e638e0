package opts

import (
	"io"

	"github.com/walteh/csvjson/pkg/config"
)

// RootOpts contains shared options used by all commands.
// It is filled in by the root command before any subcommand runs; the
// console logger travels in the command context.
type RootOpts struct {
	Config  *config.Config
	Console io.Writer
}
