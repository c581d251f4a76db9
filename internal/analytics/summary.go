package analytics

import (
	"jokipro/internal/model"

	"github.com/shopspring/decimal"
)

type FinancialSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	RemainingDue  decimal.Decimal `json:"remaining_due"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

type RevenuePipeline struct {
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"`
}

type ClientRetention struct {
	RetainedClients int `json:"retained_clients_count"`
	TotalClients    int `json:"total_clients"`
}

type JobSummary struct {
	Name   string          `json:"name"`
	Status model.Status    `json:"status"`
	Price  decimal.Decimal `json:"price"`
	Paid   decimal.Decimal `json:"paid"`
}

// ClientOverview is a client with the jobs that reference it.
type ClientOverview struct {
	model.Client
	Jobs         []JobSummary    `json:"jobs"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	JobsDone     int             `json:"jobs_done"`
}

func revenueAndPaid(tasks []model.Task) (revenue, paid decimal.Decimal) {
	for _, t := range tasks {
		revenue = revenue.Add(t.Price)
		paid = paid.Add(t.Paid)
	}
	return revenue, paid
}

func (e *Engine) FinancialSummary(tasks []model.Task, expenses []model.Expense) FinancialSummary {
	revenue, paid := revenueAndPaid(tasks)
	var spent decimal.Decimal
	for _, x := range expenses {
		spent = spent.Add(x.Amount)
	}
	return FinancialSummary{
		TotalRevenue:  revenue,
		TotalPaid:     paid,
		RemainingDue:  revenue.Sub(paid),
		TotalExpenses: spent,
		NetProfit:     paid.Sub(spent),
	}
}

// RevenuePipeline sums the price of work not yet delivered.
func (e *Engine) RevenuePipeline(tasks []model.Task) RevenuePipeline {
	var projected decimal.Decimal
	for _, t := range tasks {
		switch t.Status {
		case model.StatusToDo, model.StatusInProgress, model.StatusReview:
			projected = projected.Add(t.Price)
		}
	}
	return RevenuePipeline{ProjectedRevenue: projected}
}

// ClientRetention counts clients with more than one finished job. Tasks
// pointing at a client id that is not in clients are ignored.
func (e *Engine) ClientRetention(tasks []model.Task, clients []model.Client) ClientRetention {
	known := make(map[int]struct{}, len(clients))
	for _, c := range clients {
		known[c.ID] = struct{}{}
	}

	done := make(map[int]int)
	for _, t := range tasks {
		if t.Status != model.StatusDone || t.ClientID == nil {
			continue
		}
		if _, ok := known[*t.ClientID]; ok {
			done[*t.ClientID]++
		}
	}

	retained := 0
	for _, n := range done {
		if n > 1 {
			retained++
		}
	}
	return ClientRetention{RetainedClients: retained, TotalClients: len(known)}
}

// ClientOverviews keeps the order of clients and, within each client, the
// order of tasks.
func (e *Engine) ClientOverviews(clients []model.Client, tasks []model.Task) []ClientOverview {
	byClient := make(map[int][]model.Task)
	for _, t := range tasks {
		if t.ClientID != nil {
			byClient[*t.ClientID] = append(byClient[*t.ClientID], t)
		}
	}

	out := make([]ClientOverview, 0, len(clients))
	for _, c := range clients {
		ov := ClientOverview{Client: c, Jobs: []JobSummary{}}
		for _, t := range byClient[c.ID] {
			ov.Jobs = append(ov.Jobs, JobSummary{Name: t.Name, Status: t.Status, Price: t.Price, Paid: t.Paid})
			ov.TotalRevenue = ov.TotalRevenue.Add(t.Price)
			if t.Status == model.StatusDone {
				ov.JobsDone++
			}
		}
		out = append(out, ov)
	}
	return out
}
