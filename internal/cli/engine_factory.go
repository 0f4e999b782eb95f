package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/compiler"
	"github.com/aretw0/arbor/pkg/actor/script"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// RunOptions carries the flags of the run command.
type RunOptions struct {
	TreePath    string
	ActorPath   string
	Ticks       int
	Start       string // initial node path, empty for the root
	Strict      bool
	MetricsFile string
	Debug       bool
}

// createMachine loads the tree and the actor script and wires them into a
// Machine with standard CLI conventions.
func createMachine(opts RunOptions, logger *slog.Logger, reg prometheus.Registerer) (*arbor.Machine, *script.Actor, error) {
	desc, err := compiler.ParseFile(opts.TreePath)
	if err != nil {
		return nil, nil, err
	}

	actor, err := script.Load(opts.ActorPath, script.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	machineOpts := []arbor.Option{arbor.WithLogger(logger)}
	if opts.Debug {
		machineOpts = append(machineOpts, arbor.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if opts.Strict {
		machineOpts = append(machineOpts, arbor.WithStrictValidation())
	}
	if opts.Start != "" {
		machineOpts = append(machineOpts, arbor.WithInitialNode(opts.Start))
	}
	if reg != nil {
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		machineOpts = append(machineOpts, arbor.WithLifecycleHooks(metrics.Hooks()))
	}

	m, err := arbor.New(desc, actor, machineOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing machine: %w", err)
	}
	return m, actor, nil
}

// createDebugHooks logs every lifecycle event, reports included.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAction: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "action", "identifier", e.Identifier, "report", e.Report)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, "transition",
				"from", e.FromIdentifier,
				"to", e.ToIdentifier,
				"escalated", e.Escalated,
				"report", e.Report,
			)
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			logger.DebugContext(ctx, "tick error", "identifier", e.Identifier, "error", e.Err)
		},
	}
}
