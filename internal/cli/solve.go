package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydronet/network"
)

// solveOpts holds the input quantity for solve. Exactly one is set.
type solveOpts struct {
	flow     float64
	pressure float64
	loss     float64
	commit   bool
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a network for flow or pressure",
		Long: `Solve a network file for the complementary quantity.

Given --flow (kg/s) the pressure change and loss are printed; given
--pressure or --loss (Pa) the mass flow is printed. With --commit the
operating point is pushed through the tree and tracked components report
their share.`,
		Example: `  hydronet solve plant.toml --flow 0.3
  hydronet solve plant.yaml --pressure -1200 --commit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.load(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			return runSolve(cmd.OutOrStdout(), n, opts, flags.Changed("flow"), flags.Changed("pressure"))
		},
	}

	cmd.Flags().Float64Var(&opts.flow, "flow", 0, "net mass flow in kg/s")
	cmd.Flags().Float64Var(&opts.pressure, "pressure", 0, "net pressure change in Pa")
	cmd.Flags().Float64Var(&opts.loss, "loss", 0, "net pressure loss in Pa")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "commit the operating point and report tracked components")
	cmd.MarkFlagsMutuallyExclusive("flow", "pressure", "loss")
	cmd.MarkFlagsOneRequired("flow", "pressure", "loss")

	return cmd
}

func runSolve(w io.Writer, n *network.Network, opts solveOpts, byFlow, byPressure bool) error {
	root := n.Root()

	var q float64
	switch {
	case byFlow:
		q = opts.flow
	case byPressure:
		var err error
		if q, err = root.MassFlowFromPressureChange(opts.pressure); err != nil {
			return err
		}
	default:
		var err error
		if q, err = root.MassFlowFromPressureLoss(opts.loss); err != nil {
			return err
		}
	}

	dp, err := root.PressureChange(q)
	if err != nil {
		return err
	}
	loss, err := root.PressureLoss(q)
	if err != nil {
		return err
	}

	printSuccess(w, "Solved %s", styleTitle.Render(n.Tree().Name))
	printQuantity(w, "mass flow", q, "kg/s")
	printQuantity(w, "pressure change", dp, "Pa")
	printQuantity(w, "pressure loss", loss, "Pa")

	if !opts.commit {
		return nil
	}
	if err := root.Commit(q); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	names := n.TrackedNames()
	if len(names) == 0 {
		return errors.New("commit: network has no tracked components")
	}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		t, _ := n.Tracked(name)
		point, _ := t.Committed()
		rows = append(rows, []string{name, formatFloat(point.MassFlow), formatFloat(point.PressureChange)})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderTable([]string{"Component", "Mass flow (kg/s)", "ΔP (Pa)"}, rows))
	return nil
}
