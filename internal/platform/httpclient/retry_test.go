package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := retryPolicy{initial: 100 * time.Millisecond, max: time.Second, multiplier: 2}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 4, base: 800 * time.Millisecond},
		{attempt: 5, base: time.Second},
		{attempt: 20, base: time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 100 {
				if d := p.delay(tt.attempt); d < lo || d > hi {
					t.Fatalf("delay(%d) = %v, want within [%v, %v]", tt.attempt, d, lo, hi)
				}
			}
		})
	}
}

func TestRetryPolicy_DelayIsJittered(t *testing.T) {
	t.Parallel()

	p := retryPolicy{initial: time.Second, max: time.Second, multiplier: 1}
	seen := make(map[time.Duration]struct{})
	for range 50 {
		seen[p.delay(1)] = struct{}{}
	}
	if len(seen) < 2 {
		t.Errorf("50 delays produced %d distinct values, want jitter", len(seen))
	}
}

func TestRandFloat64_InRange(t *testing.T) {
	t.Parallel()

	for range 1000 {
		if v := randFloat64(); v < 0 || v >= 1 {
			t.Fatalf("randFloat64() = %v, want [0, 1)", v)
		}
	}
}

func TestRetryableErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: false},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("boom"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := retryableErr(tt.err); got != tt.want {
				t.Errorf("retryableErr(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	}

	for code, want := range tests {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}
