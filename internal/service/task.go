package service

import (
	"context"
	"errors"
	"fmt"

	"jokipro/internal/model"

	"gorm.io/gorm"
)

type TaskService struct{ db *gorm.DB }

func NewTaskService(db *gorm.DB) *TaskService { return &TaskService{db: db} }

// Create stores a new task. Status is derived from progress here and
// nowhere else.
func (s *TaskService) Create(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error) {
	if req.Price.IsNegative() || req.Paid.IsNegative() {
		return nil, ErrInvalidAmount
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	t := model.Task{
		Name:     req.Name,
		Status:   model.StatusFromProgress(req.Progress),
		Priority: priority,
		Price:    req.Price,
		Paid:     req.Paid,
		ClientID: req.ClientID,
		Progress: req.Progress,
	}
	if req.CompletionDate != "" {
		d := req.CompletionDate
		t.CompletionDate = &d
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &t, nil
}

// ListTasks returns every task, newest first.
func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return tasks, nil
}

// ListOpen returns tasks that are To Do or In Progress. The engine still
// applies its own filters; this only trims the rows fetched.
func (s *TaskService) ListOpen(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Where("status IN ?", []model.Status{model.StatusToDo, model.StatusInProgress}).
		Order("id DESC").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query open tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) ListByClient(ctx context.Context, clientID int) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id DESC").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query client %d tasks: %w", clientID, err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id int) (*model.Task, error) {
	var t model.Task
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query task %d: %w", id, err)
	}
	return &t, nil
}

// Delete removes a task. Deleting a missing id is not an error.
func (s *TaskService) Delete(ctx context.Context, id int) error {
	if err := s.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
