package taskgroup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_PreservesOrder(t *testing.T) {
	got, err := Run(context.Background(), 5, func(_ context.Context, i int) (int, error) {
		// later indexes finish first
		time.Sleep(time.Duration(5-i) * time.Millisecond)
		return i * 10, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 10, 20, 30, 40}, got)
}

func TestRun_AnyFailureFailsGroup(t *testing.T) {
	boom := errors.New("read failed")
	var finished atomic.Int32

	got, err := Run(context.Background(), 4, func(ctx context.Context, i int) (string, error) {
		defer finished.Add(1)
		if i == 2 {
			return "", boom
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Second):
			return "ok", nil
		}
	})

	require.ErrorIs(t, err, boom)
	require.Nil(t, got)
	// join waits for every task, not just the first to finish
	require.Equal(t, int32(4), finished.Load())
}

func TestRun_Empty(t *testing.T) {
	got, err := Run(context.Background(), 0, func(context.Context, int) (int, error) {
		t.Fatal("must not be called")
		return 0, nil
	})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRunLimit_CapsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	_, err := RunLimit(context.Background(), 2, 6, func(context.Context, int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int32(2))
}
