package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a network file and print its tree",
		Long: `Load and build a network file without solving it. Reports unknown
references, cycles and non-physical parameters, then prints the collection
tree of the root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			printSuccess(w, "%s is valid", args[0])
			printKeyValue(w, "root", n.Tree().Name)
			printKeyValue(w, "collections", strings.Join(n.Order(), ", "))
			if tracked := n.TrackedNames(); len(tracked) > 0 {
				printKeyValue(w, "tracked", strings.Join(tracked, ", "))
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, renderTree(n.Tree()))
			return nil
		},
	}
}
