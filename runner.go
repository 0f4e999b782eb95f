package arbor

import (
	"context"

	"github.com/aretw0/arbor/pkg/tree"
)

// Observer is called after every successful tick of Run with the tick number
// (starting at 1) and the new active node.
type Observer func(tick int, active *tree.Node)

// Run ticks the machine up to ticks times, starting it if needed.
// It stops early on the first error or when ctx is done, returning the number
// of completed ticks. The caller's clock is replaced by a tight loop, which
// suits simulations and tests.
func (m *Machine) Run(ctx context.Context, ticks int, observe Observer) (int, error) {
	if !m.started {
		m.Start()
	}
	for i := 1; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			return i - 1, err
		}
		active, err := m.Tick(ctx)
		if err != nil {
			return i - 1, err
		}
		if observe != nil {
			observe(i, active)
		}
	}
	return ticks, nil
}
