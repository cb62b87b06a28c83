package cli

import (
	"github.com/ehrlich-b/rubik-solver/internal/notation"
	"github.com/ehrlich-b/rubik-solver/internal/solver"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <cube-code>",
	Short: "Solve a cube, printing the rotation sequence for the requested stage",
	Long: `Decode a 54-character cube code and run the layer-by-layer solver up
through the requested stage, printing the resulting rotation sequence in
notation form.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stageName, _ := cmd.Flags().GetString("stage")
		headless, _ := cmd.Flags().GetBool("headless")

		stage, ok := solver.ParseStage(stageName)
		if !ok {
			return &solver.Error{Stage: solver.Solved, Message: "unknown stage: " + stageName}
		}

		sv, err := solver.NewFromText(args[0], stage)
		if err != nil {
			return err
		}

		rotations, err := sv.GetSolution()
		if err != nil {
			return err
		}

		out := notation.Format(rotations)
		if headless {
			cmd.Print(out)
		} else {
			cmd.Printf("solution: %s\n", out)
			cmd.Printf("moves: %d\n", len(rotations))
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().String("stage", "SOLVED", "target stage: DOWN_CROSS, DOWN_LAYER, DOWN_AND_MIDDLE_LAYERS, DOWN_MID_LAYERS_AND_UP_CROSS, DOWN_MID_LAYERS_UP_FACE, SOLVED")
	solveCmd.Flags().Bool("headless", false, "output only space-separated moves for programmatic use")
}
