package baxus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebun22/baxus-price-checker/internal/baxus"
)

func TestRateLimiterAllowsBurst(t *testing.T) {
	t.Parallel()

	r := baxus.NewRateLimiter(30, 2)

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	require.NoError(t, r.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiterQueuesBeyondBurst(t *testing.T) {
	t.Parallel()

	// 600 per minute is 10 per second, so the third call waits about 100ms.
	r := baxus.NewRateLimiter(600, 2)

	require.NoError(t, r.Wait(context.Background()))
	require.NoError(t, r.Wait(context.Background()))

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRateLimiterContextCanceled(t *testing.T) {
	t.Parallel()

	r := baxus.NewRateLimiter(1, 1)
	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
