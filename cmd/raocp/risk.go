package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// riskCmd represents the risk command
var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Print the AVaR ambiguity set of every non-leaf node",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, tree, err := buildTree(cmd)
		if err != nil {
			return err
		}
		items, err := sc.RiskItems(tree)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			logger.Warn("scenario has no risk section")
		}

		out := cmd.OutOrStdout()
		for _, item := range items {
			fmt.Fprintln(out, item)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				fmt.Fprintf(out, "E =\n%vb = %v\n", item.E(), item.B())
			}
		}
		return nil
	},
}

func init() {
	riskCmd.Flags().BoolP("verbose", "v", false, "Also print E and b")
	rootCmd.AddCommand(riskCmd)
}
