// Package cmd implements the CLI application to value and break down a
// portfolio's holdings.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&groupsCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a configuration file, read after the default "+config.FileName+" files")
var verbose = flag.Bool("verbose", false, "Log debug information")
var rawMarkdown = flag.Bool("raw", false, "Print markdown reports without terminal rendering")

// stdout and stderr are the outputs of the commands.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// settings loads the configuration of the application.
func settings() (*config.Config, error) {
	return config.LoadConfig(append(config.DefaultPaths(), *configFile)...)
}

// newLogger creates the logger of the configuration, at debug level in verbose mode.
func newLogger(cfg *config.Config) zerolog.Logger {
	logger := cfg.Logger(stderr)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}
	return logger
}

// loadContract reads the contract file and logs what was read.
func loadContract(logger zerolog.Logger, path string) (wealth.HoldingContract, error) {
	if path == "" {
		return wealth.HoldingContract{}, fmt.Errorf("missing contract file, use -f")
	}
	c, err := wealth.LoadContract(path)
	if err != nil {
		return wealth.HoldingContract{}, err
	}
	logger.Debug().
		Str("file", path).
		Str("portfolio", c.Portfolio.Code).
		Int("positions", len(c.Positions)).
		Bool("mixedCurrencies", c.IsMixedCurrencies).
		Msg("contract loaded")
	return c, nil
}

// splitList parses a comma separated list, ignoring empty items.
func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
