package analytics

import (
	"sort"

	"jokipro/internal/model"

	"github.com/shopspring/decimal"
)

const unknownPriorityRank = 99

var priorityRank = map[model.Priority]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

// MonthlyCashflow is a chart series: Labels are YYYY-MM ascending and
// Data[i] is the amount paid on tasks dated in Labels[i].
type MonthlyCashflow struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

type PriorityDistribution struct {
	Labels []model.Priority `json:"labels"`
	Data   []int            `json:"data"`
}

// MonthlyCashflow attributes each payment to the month of the task's
// completion date; tasks carry no separate payment date.
func (e *Engine) MonthlyCashflow(tasks []model.Task) MonthlyCashflow {
	totals := make(map[string]decimal.Decimal)
	for _, t := range tasks {
		if !t.Paid.IsPositive() {
			continue
		}
		d, ok := dueDate(t)
		if !ok {
			continue
		}
		month := d.Format("2006-01")
		totals[month] = totals[month].Add(t.Paid)
	}

	out := MonthlyCashflow{Labels: make([]string, 0, len(totals)), Data: make([]decimal.Decimal, 0, len(totals))}
	for m := range totals {
		out.Labels = append(out.Labels, m)
	}
	sort.Strings(out.Labels)
	for _, m := range out.Labels {
		out.Data = append(out.Data, totals[m])
	}
	return out
}

// PriorityDistribution counts tasks per priority, ordered High, Medium,
// Low. Unrecognized values follow in the order they were first seen.
func (e *Engine) PriorityDistribution(tasks []model.Task) PriorityDistribution {
	counts := make(map[model.Priority]int)
	var seen []model.Priority
	for _, t := range tasks {
		if _, ok := counts[t.Priority]; !ok {
			seen = append(seen, t.Priority)
		}
		counts[t.Priority]++
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return rankOf(seen[i]) < rankOf(seen[j])
	})

	out := PriorityDistribution{Labels: make([]model.Priority, 0, len(seen)), Data: make([]int, 0, len(seen))}
	for _, p := range seen {
		out.Labels = append(out.Labels, p)
		out.Data = append(out.Data, counts[p])
	}
	return out
}

func rankOf(p model.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return unknownPriorityRank
}
