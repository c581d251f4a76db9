package main

import (
	"context"
	"flag"
	"log"

	"jokipro/internal/config"
	"jokipro/internal/logger"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	adminUser := flag.String("admin-user", "", "admin username (default from config)")
	adminPass := flag.String("admin-pass", "", "admin password; resets it when the user exists")
	demo := flag.Bool("demo", false, "insert sample clients, tasks and expenses")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	user, pass := cfg.Auth.AdminUser, cfg.Auth.AdminPassword
	if *adminUser != "" {
		user = *adminUser
	}
	// Step 1: schema + admin account
	if err := initSchema(ctx, db, user, pass, *adminPass); err != nil {
		log.Fatal("schema init failed: ", err)
	}

	// Step 2: optional demo rows
	if *demo {
		if err := seedDemo(ctx, db); err != nil {
			log.Fatal("demo seed failed: ", err)
		}
	}

	logger.Info("=== all done ===")
}
