// Package cli implements the hydronet command-line interface.
//
// Commands:
//   - solve:   flow from pressure or pressure from flow for a network file
//   - curve:   tabulate the pressure change over a range of mass flows
//   - check:   validate a network file and print its collection tree
//   - diagram: render the collection tree as DOT or SVG
//   - version: print build information
//
// All commands support --verbose (-v) for debug logging, which includes the
// solver states of every collection.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydronet/internal/buildinfo"
	"github.com/katalvlaran/hydronet/network"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "hydronet",
		Short:        "Hydronet solves series and parallel flow networks",
		Long:         `Hydronet loads pipe, valve and pump networks from TOML or YAML files and solves them for mass flow or pressure change.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.curveCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// load reads and builds the network at path with the CLI logger.
func (c *CLI) load(path string) (*network.Network, error) {
	p := newProgress(c.Logger)
	f, err := network.Load(path)
	if err != nil {
		return nil, err
	}
	n, err := network.Build(f, network.WithLogger(c.Logger))
	if err != nil {
		return nil, err
	}
	p.done("Built " + path)
	return n, nil
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
