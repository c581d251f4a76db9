// Package scheduler runs named jobs on a daily wall-clock schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jokipro/internal/logger"

	"github.com/robfig/cron/v3"
)

type Func func(ctx context.Context) error

type job struct {
	fn Func
	id cron.EntryID
}

type Scheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	jobs    map[string]job
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		jobs:   make(map[string]job),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Daily registers fn to run every day at hour:minute in the scheduler's
// location.
func (s *Scheduler) Daily(name string, hour, minute int, fn Func) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("job %s: invalid time %02d:%02d", name, hour, minute)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.jobs[name]; dup {
		return fmt.Errorf("job %s already registered", name)
	}

	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	id, err := s.cron.AddFunc(spec, func() { s.invoke(name, fn) })
	if err != nil {
		return fmt.Errorf("job %s: %w", name, err)
	}
	s.jobs[name] = job{fn: fn, id: id}
	logger.Info("scheduler.registered", "job", name, "spec", spec)
	return nil
}

// RunNow runs a registered job synchronously, outside its schedule.
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("job %s not registered", name)
	}
	return s.invoke(name, j.fn)
}

func (s *Scheduler) invoke(name string, fn Func) error {
	start := time.Now()
	err := fn(s.ctx)
	if err != nil {
		logger.Error("scheduler.job_failed", "job", name, "err", err)
		return err
	}
	logger.Debug("scheduler.job_done", "job", name, "took", time.Since(start))
	return nil
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
	logger.Info("scheduler.started", "jobs", len(s.jobs))
}

// Stop prevents further runs, cancels the context handed to running jobs
// and waits for them until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		logger.Info("scheduler.stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next reports when the named job fires next; zero if it is unknown or
// the scheduler has not started.
func (s *Scheduler) Next(name string) time.Time {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(j.id).Next
}
