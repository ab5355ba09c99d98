package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/taskboard-dev/taskboard/internal/auth"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/models"
	"github.com/taskboard-dev/taskboard/internal/store"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AccountService struct {
	users  store.UserStore
	tokens *auth.TokenService
}

func NewAccountService(users store.UserStore, tokens *auth.TokenService) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

// Register creates a user. Nothing is written unless every check passes.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Password == "" {
		return nil, validationError("password is required")
	}

	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		return nil, validationError("name is required")
	}

	if email == "" {
		return nil, validationError("email is required")
	}

	_, err := s.users.FindUserByEmail(ctx, email)

	if err == nil {
		return nil, errs.ErrEmailTaken
	}

	if !errors.Is(err, store.ErrNotFound) {
		return nil, storeError(err)
	}

	passwordHash, err := auth.HashPassword(in.Password)

	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.NewString()},
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errs.ErrEmailTaken
		}
		return nil, storeError(err)
	}

	return user, nil
}

// Login returns a signed token for the user owning email and password.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", storeError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)

	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

func (s *AccountService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, storeError(err)
	}

	return user, nil
}
