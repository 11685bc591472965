package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/philipparndt/govec/internal/batch"
	"github.com/philipparndt/govec/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evalWatch bool

var evalCmd = &cobra.Command{
	Use:   "eval <file>",
	Short: "Evaluate the operations listed in a YAML batch file",
	Long: `Evaluate every operation of a batch file and print one line per result.
With --watch the file is evaluated again each time it changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolVarP(&evalWatch, "watch", "w", false, "Re-evaluate when the file changes")
}

func runEval(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()
	evaluator := batch.NewEvaluator(logger)

	if !evalWatch {
		return evalFile(out, evaluator, path)
	}

	if err := evalFile(out, evaluator, path); err != nil {
		logger.Warn("evaluation failed", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce(), logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(string) {
		fmt.Fprintf(out, "\n--- %s changed ---\n", path)
		if err := evalFile(out, evaluator, path); err != nil {
			logger.Warn("evaluation failed", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	fw.Run(ctx)
	return nil
}

func evalFile(out io.Writer, evaluator *batch.Evaluator, path string) error {
	f, err := batch.Load(path)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range evaluator.Evaluate(f) {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(out, "%-12s %-12s error: %v\n", r.Name, r.Op, r.Err)
		case r.Scalar != nil:
			fmt.Fprintf(out, "%-12s %-12s %s\n", r.Name, r.Op, formatter.FormatScalar(*r.Scalar))
		default:
			fmt.Fprintf(out, "%-12s %-12s %s\n", r.Name, r.Op, formatter.FormatVector(r.Vector))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d operations failed", failed, len(f.Operations))
	}
	return nil
}
