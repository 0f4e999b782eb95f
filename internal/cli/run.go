package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// RunSimulation drives the tree against the scripted actor for opts.Ticks
// ticks, writing one trace line per tick to out.
func RunSimulation(ctx context.Context, opts RunOptions, out io.Writer, logger *slog.Logger, termOpts ...termenv.OutputOption) error {
	if opts.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", opts.Ticks)
	}

	var reg *prometheus.Registry
	var registerer prometheus.Registerer
	if opts.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		registerer = reg
	}

	m, actor, err := createMachine(opts, logger, registerer)
	if err != nil {
		return err
	}

	tracer := tui.NewTracer(out, m.Tree(), termOpts...)
	n, runErr := m.Run(ctx, opts.Ticks, func(tick int, active *tree.Node) {
		tracer.Tick(tick, active, actor.Vars())
	})
	if runErr != nil {
		tracer.Error(n+1, runErr)
	}
	logger.Info("simulation finished", "ticks", n, "actions", len(actor.History()))

	if reg != nil {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return runErr
}
