// Package report produces the daily deadline-risk report and owns the
// copy of it that request handlers read.
package report

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"jokipro/internal/analytics"
	"jokipro/internal/clock"
	"jokipro/internal/logger"
	"jokipro/internal/model"
)

type Category string

const (
	CategorySuccess Category = "success"
	CategoryDanger  Category = "danger"
)

// TimestampLayout renders GeneratedAt for display, e.g. "19 October 2026, 08:00".
const TimestampLayout = "02 January 2006, 15:04"

const DefaultWindowDays = 7

type DailyReport struct {
	Message     string    `json:"message"`
	Category    Category  `json:"category"`
	GeneratedAt time.Time `json:"generated_at"`
	Timestamp   string    `json:"timestamp"`
	RiskyCount  int       `json:"risky_count"`
}

// Empty reports whether no report has been generated yet.
func (r DailyReport) Empty() bool { return r.GeneratedAt.IsZero() }

// Cache holds the latest report. One writer (the job) replaces it while
// any number of handlers read it; a reader always sees a whole report.
type Cache struct {
	cur atomic.Pointer[DailyReport]
}

func NewCache() *Cache {
	c := &Cache{}
	c.cur.Store(&DailyReport{})
	return c
}

func (c *Cache) Load() DailyReport { return *c.cur.Load() }

func (c *Cache) Store(r DailyReport) { c.cur.Store(&r) }

// Build turns the open High-priority tasks due within windowDays into a
// report stamped with the engine's current time.
func Build(e *analytics.Engine, now time.Time, tasks []model.Task, windowDays int) DailyReport {
	risky := e.UpcomingHighPriority(tasks, windowDays)
	r := DailyReport{
		GeneratedAt: now,
		Timestamp:   now.Format(TimestampLayout),
		RiskyCount:  len(risky),
	}
	if len(risky) > 0 {
		r.Category = CategoryDanger
		r.Message = fmt.Sprintf("RISK ALERT: %d high-priority task(s) are due within the next %d days. Make time for them now!", len(risky), windowDays)
	} else {
		r.Category = CategorySuccess
		r.Message = "DAILY REPORT: No high-priority deadline risk this week. Everything is under control."
	}
	return r
}

type TaskSource interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
}

// Job regenerates the report from the current task rows.
type Job struct {
	source     TaskSource
	cache      *Cache
	engine     *analytics.Engine
	clock      clock.Clock
	windowDays int
}

func NewJob(source TaskSource, cache *Cache, c clock.Clock, windowDays int) *Job {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Job{source: source, cache: cache, engine: analytics.New(c), clock: c, windowDays: windowDays}
}

// Run fetches tasks and replaces the cached report. On a store error the
// previous report is kept.
func (j *Job) Run(ctx context.Context) error {
	logger.Info("report.start", "at", j.clock.Now())
	tasks, err := j.source.ListTasks(ctx)
	if err != nil {
		logger.Error("report.failed", "err", err)
		return fmt.Errorf("list tasks: %w", err)
	}
	r := Build(j.engine, j.clock.Now(), tasks, j.windowDays)
	j.cache.Store(r)
	logger.Info("report.generated", "category", r.Category, "risky", r.RiskyCount)
	return nil
}
