package main

import (
	"fmt"

	"github.com/philipparndt/govec/internal/batch"
	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/spf13/cobra"
)

var showRecord bool

func binaryCommand(op, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseComponents(args[0])
			if err != nil {
				return err
			}
			b, err := parseComponents(args[1])
			if err != nil {
				return err
			}
			return printResult(cmd, batch.Operation{Name: op, Op: op, A: a, B: b})
		},
	}
}

var normCmd = &cobra.Command{
	Use:   "norm <a>",
	Short: "Euclidean length of a vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseComponents(args[0])
		if err != nil {
			return err
		}
		return printResult(cmd, batch.Operation{Name: batch.OpNorm, Op: batch.OpNorm, A: a})
	},
}

func init() {
	commands := []*cobra.Command{
		binaryCommand(batch.OpAdd, "add", "Componentwise sum of two vectors"),
		binaryCommand(batch.OpSub, "sub", "Componentwise difference of two vectors"),
		binaryCommand(batch.OpDot, "dot", "Inner product of two vectors"),
		binaryCommand(batch.OpCross, "cross", "Cross product of two 3D vectors"),
		normCmd,
	}
	for _, c := range commands {
		c.Flags().BoolVarP(&showRecord, "record", "r", false, "Print the result as a labeled record")
		rootCmd.AddCommand(c)
	}
}

func printResult(cmd *cobra.Command, op batch.Operation) error {
	result := batch.NewEvaluator(logger).Run(op)
	if result.Err != nil {
		return result.Err
	}

	out := cmd.OutOrStdout()
	switch {
	case result.Scalar != nil:
		fmt.Fprintln(out, formatter.FormatScalar(*result.Scalar))
	case showRecord:
		return formatter.WriteRecord(out, analysis.NewRecord(result.Name, result.Vector))
	default:
		fmt.Fprintln(out, formatter.FormatVector(result.Vector))
	}
	return nil
}
