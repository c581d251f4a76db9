package model

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// CreateTaskRequest mirrors the add-task form: name, priority, price and
// paid are required; date and progress are optional.
type CreateTaskRequest struct {
	Name           string          `json:"name" binding:"required"`
	Priority       Priority        `json:"priority" binding:"required"`
	Price          decimal.Decimal `json:"price"`
	Paid           decimal.Decimal `json:"paid"`
	CompletionDate string          `json:"completion_date"`
	ClientID       *int            `json:"client_id"`
	Progress       int             `json:"progress" binding:"min=0,max=100"`
}

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
