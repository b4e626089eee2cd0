package commit

import (
	"context"
	"fmt"

	"github.com/wannabewayno/commitional/internal/engine"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of processing one message of a batch.
type Outcome struct {
	Message *Message
	Valid   bool
	Results []PartResult
}

// ProcessAll processes independent messages concurrently, at most limit at a time
// (no limit when limit <= 0). Outcomes keep the order of msgs. With fix unset the
// messages are only validated.
func ProcessAll(ctx context.Context, e *engine.Engine, msgs []*Message, limit int, fix bool) ([]Outcome, error) {
	outcomes := make([]Outcome, len(msgs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, msg := range msgs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("message %d: %w", i, err)
			}
			out, valid, results := msg.run(gctx, e, fix)
			outcomes[i] = Outcome{Message: out, Valid: valid, Results: results}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // already wrapped per message
	}
	return outcomes, nil
}
