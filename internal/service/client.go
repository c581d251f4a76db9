package service

import (
	"context"
	"errors"
	"fmt"

	"jokipro/internal/model"

	"gorm.io/gorm"
)

type ClientService struct{ db *gorm.DB }

func NewClientService(db *gorm.DB) *ClientService { return &ClientService{db: db} }

func (s *ClientService) Create(ctx context.Context, req model.CreateClientRequest) (*model.Client, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Client{}).Where("name = ?", req.Name).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("check client name: %w", err)
	}
	if n > 0 {
		return nil, ErrDuplicateClient
	}

	c := model.Client{Name: req.Name, Contact: req.Contact, Email: req.Email}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateClient
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return &c, nil
}

// List returns clients ordered by name.
func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := s.db.WithContext(ctx).Order("name").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	return clients, nil
}
