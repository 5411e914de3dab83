// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-foodie/internal/logger"
)

type spyAuthService struct {
	AuthService
	calls   atomic.Int32
	expired atomic.Bool
	err     error
}

func (s *spyAuthService) ClearExpired(_ context.Context, _ time.Time) (bool, error) {
	s.calls.Add(1)
	return s.expired.Load(), s.err
}

func newTestJob(spy *spyAuthService, interval time.Duration) *SessionExpiryJob {
	job := NewSessionExpiryJob(spy, logger.Nop())
	job.SetInterval(interval)
	return job
}

func TestSessionExpiryJob_StartRunsChecks(t *testing.T) {
	spy := &spyAuthService{}
	job := newTestJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	if got := spy.calls.Load(); got < 2 {
		t.Fatalf("expected at least 2 checks, got %d", got)
	}
}

func TestSessionExpiryJob_StopHaltsChecks(t *testing.T) {
	spy := &spyAuthService{}
	job := newTestJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := spy.calls.Load(); got != after {
		t.Fatalf("checks continued after Stop: %d -> %d", after, got)
	}
}

func TestSessionExpiryJob_ContextCancel(t *testing.T) {
	spy := &spyAuthService{}
	job := newTestJob(spy, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	cancel()
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(25 * time.Millisecond)
	if got := spy.calls.Load(); got != after {
		t.Fatalf("checks continued after cancel: %d -> %d", after, got)
	}
}

func TestSessionExpiryJob_OnExpired(t *testing.T) {
	spy := &spyAuthService{}
	spy.expired.Store(true)
	job := newTestJob(spy, 10*time.Millisecond)

	notified := make(chan struct{}, 10)
	job.OnExpired(func() { notified <- struct{}{} })

	job.Start(context.Background())
	defer job.Stop()

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("expected expiry notification")
	}
}

func TestSessionExpiryJob_ErrorDoesNotNotify(t *testing.T) {
	spy := &spyAuthService{err: errors.New("db locked")}
	job := newTestJob(spy, 10*time.Millisecond)

	var notified atomic.Bool
	job.OnExpired(func() { notified.Store(true) })

	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	if notified.Load() {
		t.Fatal("did not expect a notification")
	}
}

func TestSessionExpiryJob_StopWithoutStart(t *testing.T) {
	job := newTestJob(&spyAuthService{}, 0)
	job.Stop()

	if job.interval != defaultSessionCheckInterval {
		t.Fatalf("expected default interval, got %v", job.interval)
	}
}

func TestSessionExpiryJob_RestartReplacesRunning(t *testing.T) {
	spy := &spyAuthService{}
	job := newTestJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	job.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(25 * time.Millisecond)
	if got := spy.calls.Load(); got != after {
		t.Fatalf("a previous goroutine is still running: %d -> %d", after, got)
	}
}
