package main

import (
	"math"

	"github.com/philipparndt/govec/internal/batch"
	"github.com/spf13/cobra"
)

var polarDegrees bool

var polarCmd = &cobra.Command{
	Use:   "polar <r> <theta>",
	Short: "Convert a polar vector to Cartesian coordinates",
	Long: `Convert (r, theta) to (r*cos(theta), r*sin(theta)).
Theta is in radians unless --degrees is given. A negative radius is used as is.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := parseScalar("radius", args[0])
		if err != nil {
			return err
		}
		theta, err := parseScalar("angle", args[1])
		if err != nil {
			return err
		}
		if polarDegrees {
			theta = theta * math.Pi / 180
		}
		return printResult(cmd, batch.Operation{Name: batch.OpPolar, Op: batch.OpPolar, R: &r, Theta: &theta})
	},
}

var homogeneousCmd = &cobra.Command{
	Use:   "homogeneous <components>",
	Short: "Convert a homogeneous vector (w = 1) to Cartesian coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseComponents(args[0])
		if err != nil {
			return err
		}
		return printResult(cmd, batch.Operation{Name: batch.OpHomogeneous, Op: batch.OpHomogeneous, A: a})
	},
}

func init() {
	polarCmd.Flags().BoolVarP(&polarDegrees, "degrees", "d", false, "Angle is given in degrees")
	for _, c := range []*cobra.Command{polarCmd, homogeneousCmd} {
		c.Flags().BoolVarP(&showRecord, "record", "r", false, "Print the result as a labeled record")
		rootCmd.AddCommand(c)
	}
}
