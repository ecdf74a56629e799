package pacing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("backend unavailable")

func TestPoliteness_FirstCallIsImmediate(t *testing.T) {
	p := NewPoliteness(time.Hour)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPoliteness_PausesAfterEachCall(t *testing.T) {
	p := NewPoliteness(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(ctx))
		p.Done()
	}
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestPoliteness_SlowCallStillGetsFullPause(t *testing.T) {
	p := NewPoliteness(50 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, p.Wait(ctx))
	time.Sleep(80 * time.Millisecond)
	p.Done()

	start := time.Now()
	require.NoError(t, p.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond, "the pause is measured from the end of the call")
}

func TestPoliteness_ZeroIntervalNeverBlocks(t *testing.T) {
	p := NewPoliteness(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Wait(ctx))
		p.Done()
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPoliteness_CancelledContext(t *testing.T) {
	p := NewPoliteness(time.Hour)
	require.NoError(t, p.Wait(context.Background()))
	p.Done()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Wait(ctx), context.Canceled)
}

func TestDo_NoRetryCallsOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), NoRetry{}, func(context.Context) error {
		calls++
		return errFlaky
	})

	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 1, calls)
}

func TestDo_NilPolicyCallsOnce(t *testing.T) {
	calls := 0
	_ = Do(context.Background(), nil, func(context.Context) error {
		calls++
		return errFlaky
	})
	assert.Equal(t, 1, calls)
}

func TestDo_ExponentialRetriesUntilSuccess(t *testing.T) {
	calls := 0
	policy := Exponential{Initial: time.Millisecond, Max: 5 * time.Millisecond, Attempts: 4}

	err := Do(context.Background(), policy, func(context.Context) error {
		calls++
		if calls < 3 {
			return errFlaky
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExponentialStopsAtAttemptLimit(t *testing.T) {
	calls := 0
	policy := Exponential{Initial: time.Millisecond, Attempts: 3}

	err := Do(context.Background(), policy, func(context.Context) error {
		calls++
		return errFlaky
	})

	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetryableErrorStops(t *testing.T) {
	permanent := errors.New("bad request")
	calls := 0
	policy := Exponential{
		Initial:   time.Millisecond,
		Attempts:  5,
		Retryable: func(err error) bool { return errors.Is(err, errFlaky) },
	}

	err := Do(context.Background(), policy, func(context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestExponential_DelayIsCapped(t *testing.T) {
	policy := Exponential{Initial: 10 * time.Millisecond, Max: 25 * time.Millisecond, Attempts: 10}

	d1, _ := policy.Next(1, errFlaky)
	d2, _ := policy.Next(2, errFlaky)
	d3, _ := policy.Next(3, errFlaky)

	assert.Equal(t, 10*time.Millisecond, d1)
	assert.Equal(t, 20*time.Millisecond, d2)
	assert.Equal(t, 25*time.Millisecond, d3)
}
