package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("api error (status %d)", e.status)
}

func (e *statusError) StatusCode() int {
	return e.status
}

func TestDoStopsAtAttemptCeiling(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return errors.New("boom")
	}, WithMaxAttempts(3), WithBaseWait(time.Millisecond))
	require.Error(t, err)
	require.Equal(t, "boom", err.Error())
	require.Equal(t, 3, count)
}

func TestDoReturnsImmediatelyOnSuccess(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return nil
	}, WithMaxAttempts(5), WithBaseWait(time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestDoRecoversAfterFailure(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		if count < 3 {
			return &statusError{status: 429}
		}
		return nil
	}, WithMaxAttempts(5), WithBaseWait(time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestDoStopsOnPermanentStatus(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return &statusError{status: 400}
	}, WithMaxAttempts(5), WithBaseWait(time.Millisecond))
	require.Error(t, err)
	require.Equal(t, 1, count)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	count := 0
	err := Do(ctx, func() error {
		count++
		return errors.New("boom")
	}, WithMaxAttempts(3), WithBaseWait(time.Second))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, count)
}

func TestShouldRetry(t *testing.T) {
	require.True(t, ShouldRetry(429))
	require.True(t, ShouldRetry(500))
	require.True(t, ShouldRetry(503))
	require.True(t, ShouldRetry(504))
	require.True(t, ShouldRetry(520))
	require.False(t, ShouldRetry(200))
	require.False(t, ShouldRetry(400))
	require.False(t, ShouldRetry(401))
	require.False(t, ShouldRetry(404))
}
