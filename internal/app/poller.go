package app

import (
	"context"
	"errors"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/state"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
	// maxConcurrentFetches bounds the requests of one refresh.
	maxConcurrentFetches = 4
)

// StartPoller launches a background goroutine that refreshes every resource
// in the store. After failed polls the interval doubles up to maxBackoff.
// It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, fetcher recruit.Fetcher, interval time.Duration, queries map[recruit.Resource]url.Values, log *zap.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	go func() {
		for {
			if err := refresh(ctx, store, fetcher, queries, log); err != nil && ctx.Err() == nil {
				log.Debug("poll finished with errors", zap.Error(err))
			}

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff returns the wait before the next poll.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

// refresh fetches every resource once. Each outcome is recorded in the
// store as it arrives; the joined errors are returned for callers that
// need them.
func refresh(ctx context.Context, store *state.Store, fetcher recruit.Fetcher, queries map[recruit.Resource]url.Values, log *zap.Logger) error {
	errs := make([]error, len(recruit.Resources))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, res := range recruit.Resources {
		i, res := i, res
		store.MarkFetching(res)
		g.Go(func() error {
			data, err := recruit.Fetch(ctx, fetcher, res, queries[res])
			store.Update(res, data, err)
			if err != nil {
				log.Warn("poll failed", zap.String("resource", string(res)), zap.Error(err))
				errs[i] = err
				return nil
			}
			log.Debug("poll ok", zap.String("resource", string(res)))
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
