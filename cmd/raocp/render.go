package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/raocp/render"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the scenario tree visualization",
	Long:  `Outputs the scenario tree either as a Mermaid diagram (graph TD) or as a bulls-eye SVG.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		_, tree, err := buildTree(cmd)
		if err != nil {
			return err
		}

		switch format {
		case "mermaid":
			output, err := render.Mermaid(tree)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		case "svg":
			radius, _ := cmd.Flags().GetFloat64("radius")
			return render.SVG(cmd.OutOrStdout(), tree, render.SVGOptions{Radius: radius})
		default:
			return fmt.Errorf("unknown format %q (want mermaid or svg)", format)
		}
	},
}

func init() {
	renderCmd.Flags().String("format", "mermaid", "Output format: mermaid or svg")
	renderCmd.Flags().Float64("radius", 300, "Outer radius of the SVG bulls-eye in px")
	rootCmd.AddCommand(renderCmd)
}
