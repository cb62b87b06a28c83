package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "cube",
	Short:   "A 3x3x3 Rubik's cube layer-by-layer solver",
	Long:    `Cube applies and solves 3x3x3 Rubik's cube moves using a fixed layer-by-layer algorithm catalogue.`,
	Version: "2.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
}
