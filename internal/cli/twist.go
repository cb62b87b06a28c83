package cli

import (
	"github.com/ehrlich-b/rubik-solver/internal/cube"
	"github.com/ehrlich-b/rubik-solver/internal/cubecode"
	"github.com/ehrlich-b/rubik-solver/internal/notation"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist <notation>",
	Short: "Apply a sequence of moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --start <54-char cube code>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")

		var c *cube.Cube
		if start != "" {
			decoded, err := cubecode.Decode(start)
			if err != nil {
				return err
			}
			c = decoded
		} else {
			c = cube.NewSolvedCube()
		}

		rotations, err := notation.ParseSequence(args[0])
		if err != nil {
			return err
		}
		c.Apply(rotations)

		cmd.Printf("%s\n", cubecode.Encode(c))
		cmd.Print(c.String())
		if c.IsSolved() {
			cmd.Println("status: solved")
		} else {
			cmd.Println("status: scrambled")
		}
		return nil
	},
}

func init() {
	twistCmd.Flags().String("start", "", "starting cube state as a 54-character cube code (default: solved)")
}
