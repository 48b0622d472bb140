package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/raocp/cones"
)

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a vector onto a convex cone",
	Example: `  raocp project --cone soc --x 4,4,5
  raocp project --cone nonneg --x -1,2 --dual`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("cone")
		x, _ := cmd.Flags().GetFloat64Slice("x")
		dual, _ := cmd.Flags().GetBool("dual")

		c, err := coneByName(name, len(x))
		if err != nil {
			return err
		}
		if dual {
			c = c.Dual()
		}
		p, err := c.Project(x)
		if err != nil {
			return err
		}
		logger.Debug("projected", "cone", c.Type(), "dim", c.Dimension())
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %.4f\n", c.Type(), p)
		return nil
	},
}

func coneByName(name string, n int) (cones.Cone, error) {
	switch name {
	case "uni":
		return cones.NewUni(n)
	case "zero":
		return cones.NewZero(n)
	case "nonneg":
		return cones.NewNonnegOrth(n)
	case "soc":
		return cones.NewSOC(n)
	default:
		return nil, fmt.Errorf("unknown cone %q (want uni, zero, nonneg or soc)", name)
	}
}

func init() {
	projectCmd.Flags().String("cone", "nonneg", "Cone: uni, zero, nonneg or soc")
	projectCmd.Flags().Float64Slice("x", nil, "Comma-separated vector to project")
	projectCmd.Flags().Bool("dual", false, "Project onto the dual cone instead")
	_ = projectCmd.MarkFlagRequired("x")
	rootCmd.AddCommand(projectCmd)
}
