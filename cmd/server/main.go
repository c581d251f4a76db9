package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jokipro/internal/clock"
	"jokipro/internal/config"
	"jokipro/internal/handler"
	"jokipro/internal/logger"
	"jokipro/internal/middleware"
	"jokipro/internal/report"
	"jokipro/internal/scheduler"
	"jokipro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dailyReportJob = "daily-risk-report"

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	// amounts go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	db, err := cfg.OpenGormDB()
	if err != nil {
		logger.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := service.Migrate(db); err != nil {
		logger.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if created, err := service.NewAuthService(db).EnsureUser(ctx, cfg.Auth.AdminUser, cfg.Auth.AdminPassword); err != nil {
		logger.Error("seed admin failed", "err", err)
		os.Exit(1)
	} else if created {
		logger.Warn("default admin created, change its password", "username", cfg.Auth.AdminUser)
	}

	clk := clock.System(cfg.Location())
	reports := report.NewCache()
	job := report.NewJob(service.NewTaskService(db), reports, clk, cfg.Report.WindowDays)

	sched := scheduler.New(cfg.Location())
	if err := sched.Daily(dailyReportJob, cfg.Report.Hour, cfg.Report.Minute, job.Run); err != nil {
		logger.Error("schedule report failed", "err", err)
		os.Exit(1)
	}
	// a report exists from the first request on
	if err := sched.RunNow(dailyReportJob); err != nil {
		logger.Warn("initial report failed", "err", err)
	}
	sched.Start()

	gin.SetMode(gin.ReleaseMode)
	r := handler.NewRouter(handler.Deps{
		DB:      db,
		Clock:   clk,
		Tokens:  middleware.NewTokens(cfg.Auth.JWTSecret, cfg.TokenTTL()),
		Reports: reports,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	go func() {
		logger.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		logger.Warn("scheduler stop timed out", "err", err)
	}
}
