package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/raocp/traverse"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Build the scenario tree and print its stages",
	Long:  `Builds the scenario tree of the configured Markov chain and prints its summary followed by the width and probability mass of every stage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tree, err := buildTree(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, tree)
		for s := 0; s <= tree.NumStages(); s++ {
			r, err := tree.NodesAtStage(s)
			if err != nil {
				return err
			}
			probs, err := tree.ProbabilitiesAtStage(s)
			if err != nil {
				return err
			}
			var mass float64
			for _, p := range probs {
				mass += p
			}
			fmt.Fprintf(out, "stage %d: nodes %v mass %.6f\n", s, r, mass)
		}

		node, _ := cmd.Flags().GetInt("node")
		if node < 0 {
			return nil
		}
		res, err := traverse.BFS(tree, 0)
		if err != nil {
			return err
		}
		path, err := res.PathTo(tree, node)
		if err != nil {
			return err
		}
		prob, err := tree.ProbabilityOfNode(node)
		if err != nil {
			return err
		}
		states := make([]int, 0, len(path)-1)
		for _, n := range path[1:] {
			w, _ := tree.ValueAtNode(n)
			states = append(states, w)
		}
		fmt.Fprintf(out, "path to %d: nodes %v states %v probability %.6f\n", node, path, states, prob)
		return nil
	},
}

func init() {
	treeCmd.Flags().Int("node", -1, "Also print the scenario path from the root to this node")
	rootCmd.AddCommand(treeCmd)
}
