// Package scheduler runs the weekly plan regeneration on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"alcyxob/fitplan/internal/logger"
	"alcyxob/fitplan/internal/service"

	"github.com/robfig/cron"
)

// DefaultSpec fires every Monday at 03:00. Specs carry a leading seconds field.
const DefaultSpec = "0 0 3 * * 1"

// Regenerator is the batch the scheduler triggers.
type Regenerator interface {
	RegenerateAll(ctx context.Context) (service.RegenerationResult, error)
}

// Scheduler owns the cron runner. A run that is still in progress when the next tick
// fires makes that tick a no-op.
type Scheduler struct {
	log     *logger.Logger
	cron    *cron.Cron
	regen   Regenerator
	running atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex // guards stopped and wg.Add
	stopped bool
	wg      sync.WaitGroup
}

// New validates spec and registers the regeneration job. An empty spec uses DefaultSpec.
func New(log *logger.Logger, regen Regenerator, spec string) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	if _, err := cron.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		log:    log.With("service", "Scheduler"),
		cron:   cron.New(),
		regen:  regen,
		ctx:    ctx,
		cancel: cancel,
	}
	if err := s.cron.AddFunc(spec, s.tick); err != nil {
		cancel()
		return nil, fmt.Errorf("register regeneration job: %w", err)
	}
	s.log.Info("Regeneration job scheduled", "spec", spec)
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule, cancels a run in progress and waits for it to return.
// RunNow fails with ErrStopped afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.cron.Stop()
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) tick() {
	if _, err := s.RunNow(s.ctx); err != nil {
		s.log.Error("Scheduled regeneration failed", "error", err)
	}
}

var (
	// ErrAlreadyRunning is returned by RunNow while another regeneration is in progress.
	ErrAlreadyRunning = errors.New("regeneration already running")
	// ErrStopped is returned by RunNow once Stop has been called.
	ErrStopped = errors.New("scheduler stopped")
)

// RunNow runs the regeneration synchronously unless one is already in progress.
func (s *Scheduler) RunNow(ctx context.Context) (service.RegenerationResult, error) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return service.RegenerationResult{}, ErrStopped
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn("Skipping regeneration: previous run still in progress")
		return service.RegenerationResult{}, ErrAlreadyRunning
	}
	defer s.running.Store(false)

	// Stop cancels on-demand runs as well as scheduled ones.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	unlink := context.AfterFunc(s.ctx, cancel)
	defer unlink()

	s.log.Info("Regeneration started")
	res, err := s.regen.RegenerateAll(ctx)
	if err != nil {
		return res, err
	}
	s.log.Info("Regeneration completed", "total", res.Total, "succeeded", res.Succeeded, "failed", res.Failed)
	return res, nil
}
