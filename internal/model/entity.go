package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// StatusFromProgress derives the status stored when a task is created.
// It is applied once on the create path and never re-evaluated, so a
// stored status may drift from a later progress value.
func StatusFromProgress(progress int) Status {
	switch {
	case progress >= 100:
		return StatusDone
	case progress >= 1:
		return StatusInProgress
	default:
		return StatusToDo
	}
}

// Task is a freelance job. CompletionDate is the deadline as YYYY-MM-DD
// and is stored verbatim; readers must tolerate values that do not parse.
type Task struct {
	ID             int             `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	Status         Status          `gorm:"size:20;not null;index" json:"status"`
	Priority       Priority        `gorm:"size:20;default:Medium" json:"priority"`
	Price          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price"`
	Paid           decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"paid"`
	CompletionDate *string         `gorm:"size:10" json:"completion_date"`
	ClientID       *int            `gorm:"index" json:"client_id"`
	Progress       int             `gorm:"default:0" json:"progress"`
}

// RemainingDue is price minus paid; negative when overpaid.
func (t Task) RemainingDue() decimal.Decimal { return t.Price.Sub(t.Paid) }

type Client struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:191;not null;uniqueIndex" json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

type Expense struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Date        string          `gorm:"size:10;not null;index" json:"date"`
}

type User struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:191;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Task) TableName() string    { return "tasks" }
func (Client) TableName() string  { return "clients" }
func (Expense) TableName() string { return "expenses" }
func (User) TableName() string    { return "users" }
