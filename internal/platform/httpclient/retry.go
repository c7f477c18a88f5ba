package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/config"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
)

// jitterFraction spreads each delay by ±25%.
const jitterFraction = 0.25

// retryPolicy is the exponential backoff schedule taken from config.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	max         time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg *config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		max:         cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// delay returns the wait before retry number attempt (1 is the first
// retry): initial*multiplier^(attempt-1), capped at max, then jittered.
func (p retryPolicy) delay(attempt int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(attempt-1))
	d = math.Min(d, float64(p.max))
	d += d * jitterFraction * (2*randFloat64() - 1)
	return time.Duration(math.Max(d, 0))
}

// send performs up to maxAttempts round trips. The request body is buffered
// so each attempt replays it. When the final attempt is a retryable status
// its response is returned together with an error and its body left open.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	replay, err := replayableBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.sleep(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}
		replay()

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr = err
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
		if attempt == c.retry.maxAttempts-1 {
			return resp, lastErr
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

// replayableBody drains req.Body and returns a func that rewinds it before
// each attempt.
func replayableBody(req *http.Request) (func(), error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func() {}, nil
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return func() {
		req.Body = io.NopCloser(bytes.NewReader(raw))
		req.ContentLength = int64(len(raw))
	}, nil
}

func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	d := c.retry.delay(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// randFloat64 returns a value in [0, 1) read from crypto/rand, or 0 if the
// read fails.
func randFloat64() float64 {
	const mantissa = 53
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(64-mantissa)) / (1 << mantissa)
}

// retryableErr rejects context cancellation and deadlines; every other
// transport error is retried.
func retryableErr(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports 429 and any 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
