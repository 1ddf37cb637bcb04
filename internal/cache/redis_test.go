package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, Init(mr.Addr(), "", 0))
	t.Cleanup(Close)
	return mr
}

func TestElevationAttemptsWithinLimitAllowed(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.True(t, AllowElevationAttempt(ctx, "10.0.0.1"), "attempt %d should be allowed", i+1)
	}
	assert.False(t, AllowElevationAttempt(ctx, "10.0.0.1"), "the sixth attempt hits the limit")
}

func TestElevationLimitIsPerClient(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		AllowElevationAttempt(ctx, "10.0.0.1")
	}
	assert.True(t, AllowElevationAttempt(ctx, "10.0.0.2"), "another client keeps its own budget")
}

func TestClearElevationAttemptsResetsBudget(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		AllowElevationAttempt(ctx, "10.0.0.1")
	}
	ClearElevationAttempts(ctx, "10.0.0.1")
	assert.True(t, AllowElevationAttempt(ctx, "10.0.0.1"))
}

func TestElevationWindowExpires(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		AllowElevationAttempt(ctx, "10.0.0.1")
	}
	assert.False(t, AllowElevationAttempt(ctx, "10.0.0.1"))

	mr.FastForward(16 * time.Minute)
	assert.True(t, AllowElevationAttempt(ctx, "10.0.0.1"), "the counter expires with the window")
}

func TestWithoutRedisEveryAttemptAllowed(t *testing.T) {
	Close()
	require.NoError(t, Init("", "", 0))

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		assert.True(t, AllowElevationAttempt(ctx, "10.0.0.1"), "no cache means graceful degradation, not lockout")
	}
	ClearElevationAttempts(ctx, "10.0.0.1")
}

func TestInitUnreachableServerDegrades(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	assert.Error(t, Init(addr, "", 0))
	assert.True(t, AllowElevationAttempt(context.Background(), "10.0.0.1"))
}
