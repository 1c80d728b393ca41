package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, time.Second, nil)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return base }

	var waits []time.Duration
	rl.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	for i := 0; i < 3; i++ {
		if _, err := rl.FetchGameLog(context.Background(), 2544, "2023-24"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	want := []time.Duration{0, time.Second, 2 * time.Second}
	for i, w := range want {
		if waits[i] != w {
			t.Fatalf("call %d: expected wait %s, got %s", i, w, waits[i])
		}
	}
	if inner.calls.Load() != 3 {
		t.Fatalf("expected inner provider called 3 times, got %d", inner.calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchPlayers(ctx, "2024-25"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedProvider(nil, time.Millisecond, nil)

	_, err := rl.FetchGameLog(context.Background(), 2544, "2023-24")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDisabledInterval(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, 0, nil)
	rl.sleep = func(context.Context, time.Duration) error {
		t.Fatal("expected no sleep when interval disabled")
		return nil
	}
	if _, err := rl.FetchGameLog(context.Background(), 2544, "2023-24"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
