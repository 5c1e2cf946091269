package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrymomot/qrgames/pkg/async"
)

func TestAsyncReturnsValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Async(ctx, 21, func(_ context.Context, n int) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return n * 2, nil
	})

	v, err := future.Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}

	// a second Await sees the same result
	if v2, _ := future.Await(); v2 != 42 {
		t.Errorf("expected 42 on second await, got %d", v2)
	}
}

func TestAsyncErrorPropagation(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("render failed")

	future := async.Async(context.Background(), "x", func(context.Context, string) ([]byte, error) {
		return nil, expectedErr
	})

	_, err := future.Await()
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
}

func TestAsyncCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := make(chan struct{}, 1)
	future := async.Async(ctx, 1, func(context.Context, int) (int, error) {
		called <- struct{}{}
		return 1, nil
	})

	_, err := future.Await()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	select {
	case <-called:
		t.Error("function must not run with a canceled context")
	default:
	}
}

func TestAsyncIsComplete(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	future := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 0, nil
	})

	if future.IsComplete() {
		t.Error("expected future to be pending")
	}
	close(release)
	_, _ = future.Await()
	if !future.IsComplete() {
		t.Error("expected future to be complete after Await")
	}
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fast := async.Async(ctx, 10, func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	})
	if v, err := fast.AwaitWithTimeout(time.Second); err != nil || v != 10 {
		t.Errorf("expected (10, nil), got (%d, %v)", v, err)
	}

	slow := async.Async(ctx, 300, func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	})
	if _, err := slow.AwaitWithTimeout(20 * time.Millisecond); !errors.Is(err, async.ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestWaitAllRunsConcurrently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sleep := func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	}

	start := time.Now()
	vals, err := async.WaitAll(
		async.Async(ctx, 100, sleep),
		async.Async(ctx, 50, sleep),
		async.Async(ctx, 80, sleep),
	)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{100, 50, 80}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, vals)
		}
	}
	if elapsed >= 230*time.Millisecond {
		t.Errorf("expected concurrent execution, took %v", elapsed)
	}
}

func TestWaitAllJoinsErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	fail := func(err error) func(context.Context, int) (int, error) {
		return func(context.Context, int) (int, error) { return 0, err }
	}

	vals, err := async.WaitAll(
		async.Async(ctx, 0, fail(errA)),
		async.Async(ctx, 7, func(_ context.Context, n int) (int, error) { return n, nil }),
		async.Async(ctx, 0, fail(errB)),
	)
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected both errors, got %v", err)
	}
	if vals[1] != 7 {
		t.Errorf("expected successful value to be kept, got %v", vals)
	}

	if vals, err := async.WaitAll[int](); err != nil || len(vals) != 0 {
		t.Errorf("expected empty result, got %v, %v", vals, err)
	}
}
