package service

import (
	"context"
	"errors"
	"fmt"

	"jokipro/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLen = 6

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.find(ctx, "username = ?", username)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	return u, nil
}

// ChangePassword replaces the password of userID after checking the old
// one, that the confirmation matches and the minimum length.
func (s *AuthService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword, confirm string) error {
	u, err := s.find(ctx, "id = ?", userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return ErrWrongPassword
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}
	return s.setHash(ctx, u, newPassword)
}

// EnsureUser creates username with password unless it already exists.
// It reports whether a user was created.
func (s *AuthService) EnsureUser(ctx context.Context, username, password string) (bool, error) {
	_, err := s.find(ctx, "username = ?", username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return false, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return false, err
	}
	u := model.User{Username: username, PasswordHash: hash}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	return true, nil
}

// ResetPassword sets a new password without checking the old one.
func (s *AuthService) ResetPassword(ctx context.Context, username, password string) error {
	u, err := s.find(ctx, "username = ?", username)
	if err != nil {
		return err
	}
	return s.setHash(ctx, u, password)
}

func (s *AuthService) find(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *AuthService) setHash(ctx context.Context, u *model.User, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(u).Update("password_hash", hash).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}
