package service

import (
	"errors"
	"fmt"

	"jokipro/internal/model"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateClient  = errors.New("client name already exists")
	ErrWrongPassword    = errors.New("wrong password")
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
	ErrPasswordTooShort = errors.New("new password must be at least 6 characters")
	ErrInvalidAmount    = errors.New("amounts must not be negative")
)

// Migrate creates or updates the tables for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Task{}, &model.Client{}, &model.Expense{}, &model.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
