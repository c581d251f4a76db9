package handler

import (
	"jokipro/internal/analytics"
	"jokipro/internal/clock"
	"jokipro/internal/middleware"
	"jokipro/internal/report"
	"jokipro/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps is everything the API needs from the process.
type Deps struct {
	DB      *gorm.DB
	Clock   clock.Clock
	Tokens  *middleware.Tokens
	Reports *report.Cache
}

func NewRouter(d Deps) *gin.Engine {
	tasks := service.NewTaskService(d.DB)
	clients := service.NewClientService(d.DB)
	expenses := service.NewExpenseService(d.DB)
	auth := service.NewAuthService(d.DB)
	data := service.NewDataService(d.DB)

	authH := NewAuthHandler(auth, d.Tokens)
	recH := NewRecordHandler(tasks, clients, expenses)
	anH := NewAnalyticsHandler(tasks, clients, expenses, analytics.New(d.Clock), d.Reports)
	setH := NewSettingsHandler(auth, data, d.Clock)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-New-Token", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)

	api := r.Group("/api", d.Tokens.JWTAuth())
	api.GET("/dashboard", anH.Dashboard)
	api.GET("/report/daily", anH.DailyReport)

	api.POST("/tasks", recH.CreateTask)
	api.DELETE("/tasks/:id", recH.DeleteTask)
	api.POST("/clients", recH.CreateClient)
	api.POST("/expenses", recH.CreateExpense)

	api.GET("/financial_summary", anH.FinancialSummary)
	api.GET("/revenue_pipeline", anH.RevenuePipeline)
	api.GET("/client_retention", anH.ClientRetention)
	api.GET("/aging_analysis", anH.Aging)
	api.GET("/monthly_cashflow", anH.MonthlyCashflow)
	api.GET("/priority_data", anH.PriorityDistribution)
	api.GET("/deadline_risk", anH.DeadlineRisk)

	api.POST("/settings/password", setH.ChangePassword)
	api.GET("/settings/export", setH.Export)
	api.POST("/settings/reset", setH.Reset)

	return r
}
