package retry

import (
	"context"

	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/config"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 3

// Retryer retries an operation with exponential backoff; when retries are
// exhausted the dlqCallback is invoked so the payload is not lost.
type Retryer interface {
	Retry(ctx context.Context, operation, dlqCallback func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	cfg config.ExponentialBackOffConfig
}

func NewExponentialBackOff(cfg config.ExponentialBackOffConfig) Retryer {
	if cfg.MaxBackoffTime <= 0 {
		cfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}
	if cfg.BackoffMultiplier <= 0 {
		cfg.BackoffMultiplier = backoff.DefaultMultiplier
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{cfg: cfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation, dlqCallback func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.cfg.MaxBackoffTime
	eb.Multiplier = r.cfg.BackoffMultiplier
	// A cap below the default first interval would expire before any
	// retry; keep the first wait inside the cap.
	if eb.MaxElapsedTime > 0 && eb.InitialInterval > eb.MaxElapsedTime {
		eb.InitialInterval = eb.MaxElapsedTime / 2
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx))
	if err != nil {
		log.Debugf(ctx, "retries exhausted, handing payload to DLQ: %v", err)
		return dlqCallback()
	}

	return nil
}

// StopRetryWithErr marks err as permanent so the operation is not retried.
// Call it from inside the operation func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
