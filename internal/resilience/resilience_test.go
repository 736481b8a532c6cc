package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/resilience"
)

func TestRetryWithBackoffSuccess(t *testing.T) {
	cfg := resilience.Config{
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
	}

	calls := 0
	err := resilience.RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryWithBackoffRetriesOnFailure(t *testing.T) {
	cfg := resilience.Config{
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
	}

	calls := 0
	err := resilience.RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoffExhausted(t *testing.T) {
	cfg := resilience.Config{
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
	}

	wantErr := errors.New("down")
	calls := 0
	err := resilience.RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoffRespectsContext(t *testing.T) {
	cfg := resilience.Config{
		MaxRetries:     10,
		InitialBackoff: 50 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := resilience.RetryWithBackoff(ctx, cfg, func() error {
		calls++
		return errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls > 2 {
		t.Errorf("expected cancellation to stop retries, got %d calls", calls)
	}
}
