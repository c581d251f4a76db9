package main

import (
	"context"
	"errors"
	"time"

	"jokipro/internal/clock"
	"jokipro/internal/logger"
	"jokipro/internal/model"
	"jokipro/internal/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type demoTask struct {
	client   string
	name     string
	priority model.Priority
	price    int64
	paid     int64
	offset   int // deadline relative to today, in days
	progress int
}

// seedDemo inserts a small data set that lights up every dashboard
// chart. Clients that already exist are reused.
func seedDemo(ctx context.Context, db *gorm.DB) error {
	clients := service.NewClientService(db)
	tasks := service.NewTaskService(db)
	expenses := service.NewExpenseService(db)
	today := clock.DateOf(time.Now())

	ids := map[string]int{}
	for _, c := range []model.CreateClientRequest{
		{Name: "Studio Arunika", Contact: "0812-1111-2222", Email: "hello@arunika.id"},
		{Name: "Kopi Senja", Contact: "0813-3333-4444"},
		{Name: "Rina (thesis)", Email: "rina@campus.ac.id"},
	} {
		created, err := clients.Create(ctx, c)
		if errors.Is(err, service.ErrDuplicateClient) {
			logger.Info("demo: client already exists, skipping", "name", c.Name)
			continue
		}
		if err != nil {
			return err
		}
		ids[c.Name] = created.ID
	}
	existing, err := clients.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range existing {
		ids[c.Name] = c.ID
	}

	for _, d := range []demoTask{
		{"Studio Arunika", "Company profile site", model.PriorityHigh, 4_500_000, 2_000_000, -75, 100},
		{"Studio Arunika", "Landing page revamp", model.PriorityMedium, 2_000_000, 2_000_000, -20, 100},
		{"Studio Arunika", "Brand guideline PDF", model.PriorityMedium, 1_500_000, 500_000, -40, 100},
		{"Kopi Senja", "Menu board design", model.PriorityLow, 750_000, 0, 10, 0},
		{"Kopi Senja", "POS integration", model.PriorityHigh, 3_000_000, 1_000_000, 2, 60},
		{"Rina (thesis)", "Chapter 4 data analysis", model.PriorityHigh, 1_200_000, 600_000, 5, 30},
		{"", "Portfolio refresh", model.PriorityLow, 0, 0, 30, 0},
	} {
		req := model.CreateTaskRequest{
			Name:           d.name,
			Priority:       d.priority,
			Price:          decimal.NewFromInt(d.price),
			Paid:           decimal.NewFromInt(d.paid),
			CompletionDate: today.AddDate(0, 0, d.offset).Format(clock.DateLayout),
			Progress:       d.progress,
		}
		if id, ok := ids[d.client]; ok {
			req.ClientID = &id
		}
		if _, err := tasks.Create(ctx, req); err != nil {
			return err
		}
	}

	for _, x := range []model.CreateExpenseRequest{
		{Description: "Hosting (annual)", Amount: decimal.NewFromInt(900_000), Date: today.AddDate(0, 0, -60).Format(clock.DateLayout)},
		{Description: "Font license", Amount: decimal.NewFromInt(350_000), Date: today.AddDate(0, 0, -12).Format(clock.DateLayout)},
	} {
		if _, err := expenses.Create(ctx, x); err != nil {
			return err
		}
	}
	logger.Info("demo: data inserted")
	return nil
}
