package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydronet/network"
)

type curveOpts struct {
	from, to float64
	steps    int
}

func (c *CLI) curveCommand() *cobra.Command {
	opts := curveOpts{from: 0, to: 1, steps: 11}

	cmd := &cobra.Command{
		Use:   "curve <file>",
		Short: "Tabulate pressure change against mass flow",
		Long: `Tabulate the system curve of a network: pressure change and pressure
loss at evenly spaced mass flows from --from to --to inclusive.`,
		Example: `  hydronet curve plant.toml --from -0.5 --to 0.5 --steps 21`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.steps < 2 {
				return fmt.Errorf("--steps must be at least 2, got %d", opts.steps)
			}
			n, err := c.load(args[0])
			if err != nil {
				return err
			}
			return runCurve(cmd.OutOrStdout(), n, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.from, "from", opts.from, "first mass flow in kg/s")
	cmd.Flags().Float64Var(&opts.to, "to", opts.to, "last mass flow in kg/s")
	cmd.Flags().IntVar(&opts.steps, "steps", opts.steps, "number of points")

	return cmd
}

func runCurve(w io.Writer, n *network.Network, opts curveOpts) error {
	root := n.Root()
	step := (opts.to - opts.from) / float64(opts.steps-1)

	rows := make([][]string, 0, opts.steps)
	for i := range opts.steps {
		q := opts.from + float64(i)*step
		dp, err := root.PressureChange(q)
		if err != nil {
			return fmt.Errorf("at %g kg/s: %w", q, err)
		}
		loss, err := root.PressureLoss(q)
		if err != nil {
			return fmt.Errorf("at %g kg/s: %w", q, err)
		}
		rows = append(rows, []string{formatFloat(q), formatFloat(dp), formatFloat(loss)})
	}

	fmt.Fprintln(w, styleTitle.Render(n.Tree().Name))
	fmt.Fprintln(w, renderTable([]string{"Mass flow (kg/s)", "ΔP (Pa)", "Loss (Pa)"}, rows))
	return nil
}
