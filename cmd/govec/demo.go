package main

import (
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/philipparndt/govec/pkg/geometry"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample computations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), formatter)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(out io.Writer, f analysis.Formatter) error {
	v2a := geometry.NewVector2(3, 4)
	v2b := geometry.NewVector2(1, 2)
	fmt.Fprintf(out, "v2a + v2b = %s\n", v2a.Add(v2b))
	fmt.Fprintf(out, "v2a · v2b = %s\n", f.FormatScalar(v2a.Dot(v2b)))
	if err := f.WriteRecord(out, analysis.NewRecord("v2a", v2a)); err != nil {
		return err
	}

	v3a := geometry.NewVector3(2, 3, 1)
	v3b := geometry.NewVector3(0.5, 1.25, 2)
	fmt.Fprintf(out, "\nv3a × v3b = %s\n", v3a.Cross(v3b))
	if err := f.WriteRecord(out, analysis.NewRecord("v3a", v3a)); err != nil {
		return err
	}

	vn1 := geometry.NewVectorN(1, 2, 3, 4)
	vn2 := geometry.NewVectorN(4, 3, 2, 1)
	dot, err := vn1.Dot(vn2)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nvn1 · vn2 = %s\n", f.FormatScalar(dot))
	if err := f.WriteRecord(out, analysis.NewRecord("vn1", vn1)); err != nil {
		return err
	}

	polar := geometry.NewPolar(5, math.Pi/4)
	fmt.Fprintf(out, "\nPolar to Cartesian: %s\n", f.FormatVector(polar.ToCartesian()))

	hvec := geometry.NewHomogeneous(2, 4, 6)
	cart, err := hvec.ToCartesian()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Homogeneous to Cartesian: %s\n", cart)
	return nil
}
