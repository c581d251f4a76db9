package analytics

import (
	"sort"

	"jokipro/internal/clock"
	"jokipro/internal/model"

	"github.com/shopspring/decimal"
)

const riskyAfterDays = 31

type OverdueTask struct {
	Name   string          `json:"name"`
	Days   int             `json:"days"`
	Amount decimal.Decimal `json:"amount"`
}

type AgingSummary struct {
	TotalOverdue decimal.Decimal `json:"total_overdue"`
	Aging1To30   decimal.Decimal `json:"aging_1_30"`
	Aging31To60  decimal.Decimal `json:"aging_31_60"`
	Aging60Plus  decimal.Decimal `json:"aging_60_plus"`
	RiskyTasks   []OverdueTask   `json:"risky_tasks"`
}

type AgingAnalysis struct {
	Summary         AgingSummary    `json:"aging_summary"`
	CollectionRatio decimal.Decimal `json:"collection_ratio"`
	RiskyTasks      []OverdueTask   `json:"risky_tasks"`
}

// Aging buckets the unpaid balance of delivered work by how many days
// have passed since its completion date. Work due today or later is not
// overdue and is left out of every bucket.
func (e *Engine) Aging(tasks []model.Task) AgingAnalysis {
	today := e.today()
	sum := AgingSummary{RiskyTasks: []OverdueTask{}}

	for _, t := range tasks {
		if t.Status != model.StatusDone {
			continue
		}
		due := t.RemainingDue()
		if !due.IsPositive() {
			continue
		}
		d, ok := dueDate(t)
		if !ok {
			continue
		}
		days := clock.DaysBetween(d, today)
		if days <= 0 {
			continue
		}

		sum.TotalOverdue = sum.TotalOverdue.Add(due)
		switch {
		case days <= 30:
			sum.Aging1To30 = sum.Aging1To30.Add(due)
		case days <= 60:
			sum.Aging31To60 = sum.Aging31To60.Add(due)
		default:
			sum.Aging60Plus = sum.Aging60Plus.Add(due)
		}
		if days >= riskyAfterDays {
			sum.RiskyTasks = append(sum.RiskyTasks, OverdueTask{Name: t.Name, Days: days, Amount: due})
		}
	}

	sort.SliceStable(sum.RiskyTasks, func(i, j int) bool {
		return sum.RiskyTasks[i].Days > sum.RiskyTasks[j].Days
	})

	return AgingAnalysis{
		Summary:         sum,
		CollectionRatio: CollectionRatio(tasks),
		RiskyTasks:      sum.RiskyTasks,
	}
}

// CollectionRatio is paid / revenue as a percentage rounded to two
// places, or 0 when there is no revenue.
func CollectionRatio(tasks []model.Task) decimal.Decimal {
	revenue, paid := revenueAndPaid(tasks)
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return paid.Div(revenue).Mul(hundred).Round(2)
}
