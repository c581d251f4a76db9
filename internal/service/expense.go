package service

import (
	"context"
	"fmt"

	"jokipro/internal/model"

	"gorm.io/gorm"
)

type ExpenseService struct{ db *gorm.DB }

func NewExpenseService(db *gorm.DB) *ExpenseService { return &ExpenseService{db: db} }

func (s *ExpenseService) Create(ctx context.Context, req model.CreateExpenseRequest) (*model.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	x := model.Expense{Description: req.Description, Amount: req.Amount, Date: req.Date}
	if err := s.db.WithContext(ctx).Create(&x).Error; err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &x, nil
}

// List returns expenses, most recent date first.
func (s *ExpenseService) List(ctx context.Context) ([]model.Expense, error) {
	var xs []model.Expense
	if err := s.db.WithContext(ctx).Order("date DESC").Order("id DESC").Find(&xs).Error; err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	return xs, nil
}
