package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <tree>",
	Short: "Tick a tree against a scripted actor",
	Long: `Loads the tree and the actor script, then ticks the tree up to --ticks
times, printing the active node and the actor variables after each tick.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := cli.RunOptions{TreePath: args[0]}
		opts.ActorPath, _ = cmd.Flags().GetString("actor")
		opts.Ticks, _ = cmd.Flags().GetInt("ticks")
		opts.Start, _ = cmd.Flags().GetString("start")
		opts.Strict, _ = cmd.Flags().GetBool("strict")
		opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := cli.RunSimulation(ctx, opts, os.Stdout, logger); err != nil {
			logger.Error("run failed", "error", err)
			stop()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("actor", "a", "", "Actor script providing actions and guards")
	runCmd.Flags().IntP("ticks", "n", 10, "Number of ticks to run")
	runCmd.Flags().String("start", "", "Path of the initial node (e.g. dog/wander)")
	runCmd.Flags().Bool("strict", false, "Reject dangling pointers before running")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file when done")
	runCmd.Flags().Bool("debug", false, "Log every lifecycle event")
	_ = runCmd.MarkFlagRequired("actor")
}
