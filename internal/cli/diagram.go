package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydronet/network"
)

func (c *CLI) diagramCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "diagram <file>",
		Short: "Render the collection tree as DOT or SVG",
		Long: `Render the collection tree of a network file. The output format follows
the extension of --output: .dot writes Graphviz source, .svg renders it with
the embedded Graphviz.`,
		Example: `  hydronet diagram plant.toml -o plant.svg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext := strings.ToLower(filepath.Ext(output))
			if ext != ".dot" && ext != ".svg" {
				return fmt.Errorf("unsupported output %q: use .dot or .svg", output)
			}
			n, err := c.load(args[0])
			if err != nil {
				return err
			}

			data := []byte(network.ToDOT(n.Tree()))
			if ext == ".svg" {
				p := newProgress(c.Logger)
				if data, err = network.RenderSVG(cmd.Context(), string(data)); err != nil {
					return err
				}
				p.done("Rendered SVG")
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Diagram written")
			printFile(w, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
