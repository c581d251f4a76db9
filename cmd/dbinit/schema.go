package main

import (
	"context"
	"fmt"

	"jokipro/internal/logger"
	"jokipro/internal/service"

	"gorm.io/gorm"
)

// initSchema migrates every table and makes sure the admin account
// exists. A non-empty resetPass overwrites the admin password.
func initSchema(ctx context.Context, db *gorm.DB, user, defaultPass, resetPass string) error {
	if err := service.Migrate(db); err != nil {
		return err
	}
	logger.Info("schema: tables migrated")

	auth := service.NewAuthService(db)
	pass := defaultPass
	if resetPass != "" {
		pass = resetPass
	}
	created, err := auth.EnsureUser(ctx, user, pass)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if created {
		logger.Info("schema: admin created", "username", user)
		return nil
	}
	if resetPass == "" {
		logger.Info("schema: admin already exists, skipping", "username", user)
		return nil
	}
	if err := auth.ResetPassword(ctx, user, resetPass); err != nil {
		return fmt.Errorf("reset admin password: %w", err)
	}
	logger.Info("schema: admin password reset", "username", user)
	return nil
}
