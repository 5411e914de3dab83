// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-foodie/internal/logger"
)

const defaultSessionCheckInterval = time.Minute

// SessionExpiryJob drops the session once its token expires. It is idle until
// Start is called.
type SessionExpiryJob struct {
	authService AuthService
	logger      *logger.Logger
	interval    time.Duration
	onExpired   func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSessionExpiryJob(authService AuthService, logger *logger.Logger) *SessionExpiryJob {
	return &SessionExpiryJob{
		authService: authService,
		logger:      logger,
		interval:    defaultSessionCheckInterval,
	}
}

// SetInterval sets the check interval used by the next Start. Non-positive
// values restore the default.
func (j *SessionExpiryJob) SetInterval(interval time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}
	j.interval = interval
}

// OnExpired registers fn to be called from the job goroutine after an expired
// session was dropped.
func (j *SessionExpiryJob) OnExpired(fn func()) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.onExpired = fn
}

// Start stops any previously running job, then checks the session every
// interval until ctx is cancelled or Stop is called.
func (j *SessionExpiryJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	interval := j.interval
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case now := <-t.C:
				j.check(jobCtx, now)
			}
		}
	}()
}

func (j *SessionExpiryJob) check(ctx context.Context, now time.Time) {
	expired, err := j.authService.ClearExpired(ctx, now)
	if err != nil {
		j.logger.Err(err).Msg("session expiry check failed")
	}
	if !expired {
		return
	}

	j.mu.Lock()
	onExpired := j.onExpired
	j.mu.Unlock()

	if onExpired != nil {
		onExpired()
	}
}

// Stop cancels the job goroutine and waits for it to exit. Safe to call when
// the job is not running.
func (j *SessionExpiryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
