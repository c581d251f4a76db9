package handler

import (
	"net/http"

	"jokipro/internal/analytics"
	"jokipro/internal/model"
	"jokipro/internal/report"
	"jokipro/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler fetches the current rows and hands them to the engine.
// Nothing is cached between requests.
type AnalyticsHandler struct {
	tasks    *service.TaskService
	clients  *service.ClientService
	expenses *service.ExpenseService
	engine   *analytics.Engine
	reports  *report.Cache
}

func NewAnalyticsHandler(tasks *service.TaskService, clients *service.ClientService, expenses *service.ExpenseService,
	engine *analytics.Engine, reports *report.Cache) *AnalyticsHandler {
	return &AnalyticsHandler{tasks: tasks, clients: clients, expenses: expenses, engine: engine, reports: reports}
}

func (h *AnalyticsHandler) loadTasks(c *gin.Context) ([]model.Task, bool) {
	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return tasks, true
}

// GET /api/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, ok := h.loadTasks(c)
	if !ok {
		return
	}
	expenses, err := h.expenses.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	clients, err := h.clients.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks":        nonNil(tasks),
		"expenses":     nonNil(expenses),
		"clients_list": h.engine.ClientOverviews(clients, tasks),
		"bot_report":   h.reports.Load(),
	})
}

// GET /api/financial_summary
func (h *AnalyticsHandler) FinancialSummary(c *gin.Context) {
	tasks, ok := h.loadTasks(c)
	if !ok {
		return
	}
	expenses, err := h.expenses.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.engine.FinancialSummary(tasks, expenses))
}

// GET /api/revenue_pipeline
func (h *AnalyticsHandler) RevenuePipeline(c *gin.Context) {
	if tasks, ok := h.loadTasks(c); ok {
		c.JSON(http.StatusOK, h.engine.RevenuePipeline(tasks))
	}
}

// GET /api/client_retention
func (h *AnalyticsHandler) ClientRetention(c *gin.Context) {
	tasks, ok := h.loadTasks(c)
	if !ok {
		return
	}
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.engine.ClientRetention(tasks, clients))
}

// GET /api/aging_analysis
func (h *AnalyticsHandler) Aging(c *gin.Context) {
	if tasks, ok := h.loadTasks(c); ok {
		c.JSON(http.StatusOK, h.engine.Aging(tasks))
	}
}

// GET /api/monthly_cashflow
func (h *AnalyticsHandler) MonthlyCashflow(c *gin.Context) {
	if tasks, ok := h.loadTasks(c); ok {
		c.JSON(http.StatusOK, h.engine.MonthlyCashflow(tasks))
	}
}

// GET /api/priority_data
func (h *AnalyticsHandler) PriorityDistribution(c *gin.Context) {
	if tasks, ok := h.loadTasks(c); ok {
		c.JSON(http.StatusOK, h.engine.PriorityDistribution(tasks))
	}
}

// GET /api/deadline_risk
func (h *AnalyticsHandler) DeadlineRisk(c *gin.Context) {
	tasks, err := h.tasks.ListOpen(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.engine.DeadlineRisk(tasks))
}

// GET /api/report/daily
func (h *AnalyticsHandler) DailyReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.Load())
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
