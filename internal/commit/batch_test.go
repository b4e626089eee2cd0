package commit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wannabewayno/commitional/internal/config"
	"github.com/wannabewayno/commitional/internal/engine"
	"github.com/wannabewayno/commitional/internal/testutil"
)

func TestProcessAll(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)
	ctx, _ := testutil.NewTestContext(t)

	e := engine.FromRules(ctx, config.DefaultConfig().Rules)

	var msgs []*Message
	for i := range 20 {
		raw := fmt.Sprintf("feat: change %d", i)
		if i%3 == 0 {
			raw = fmt.Sprintf("Oops: change %d.", i)
		}
		m, err := Parse(raw)
		require.NoError(t, err)
		msgs = append(msgs, m)
	}

	outcomes, err := ProcessAll(ctx, e, msgs, 4, false)
	require.NoError(t, err)
	require.Len(t, outcomes, len(msgs))

	for i, o := range outcomes {
		assert.Equal(t, msgs[i].String(), o.Message.String(), "order is preserved")
		assert.Equal(t, i%3 != 0, o.Valid, "message %d", i)
	}
}

func TestProcessAllFixes(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)
	ctx, _ := testutil.NewTestContext(t)

	e := engine.FromRules(ctx, config.DefaultConfig().Rules)
	m, err := Parse("FIX: trailing dot.")
	require.NoError(t, err)

	outcomes, err := ProcessAll(ctx, e, []*Message{m}, 0, true)
	require.NoError(t, err)
	assert.Equal(t, "fix: trailing dot", outcomes[0].Message.String())
	assert.True(t, outcomes[0].Valid)
}

func TestProcessAllCancelled(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := Parse("fix: x")
	require.NoError(t, err)

	_, err = ProcessAll(ctx, engine.New(), []*Message{m, m.Clone()}, 1, false)
	require.ErrorIs(t, err, context.Canceled)
}
