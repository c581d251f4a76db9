// Package analytics computes the dashboard's financial and deadline
// figures from in-memory snapshots of tasks, clients and expenses.
//
// Every method is a pure function of its arguments and the engine's
// clock: nothing here performs I/O, and a bad row (unparseable date,
// unknown priority) is skipped or given a default weight instead of
// failing the whole computation.
package analytics

import (
	"time"

	"jokipro/internal/clock"
	"jokipro/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Engine struct {
	clock clock.Clock
}

func New(c clock.Clock) *Engine {
	if c == nil {
		panic("analytics: nil clock")
	}
	return &Engine{clock: c}
}

func (e *Engine) today() time.Time { return clock.Today(e.clock) }

// dueDate parses t.CompletionDate; ok is false when the task has no date
// or the stored value is not YYYY-MM-DD.
func dueDate(t model.Task) (time.Time, bool) {
	if t.CompletionDate == nil {
		return time.Time{}, false
	}
	d, err := clock.ParseDate(*t.CompletionDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func isOpen(s model.Status) bool {
	return s == model.StatusToDo || s == model.StatusInProgress
}
