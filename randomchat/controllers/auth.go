// randomchat/controllers/auth.go
package controllers

import (
	"context"
	"fmt"

	"randomchat/randomchat/config"
	apperrors "randomchat/randomchat/errors"
	"randomchat/randomchat/services/auth"
	"randomchat/randomchat/sources/psql/models"
	"randomchat/randomchat/utils/logging"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// UserStore is the credential persistence surface. *dao.UserDAO satisfies
// it; tests supply an in-memory fake.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, hashedPassword string) (*models.User, error)
}

type AuthController struct {
	users UserStore
	cfg   config.Config
}

func NewAuthController(users UserStore, cfg config.Config) *AuthController {
	return &AuthController{
		users: users,
		cfg:   cfg,
	}
}

// Register creates a new user with a bcrypt-hashed password. Duplicate
// usernames are rejected; the unique index backs up the pre-check.
func (c *AuthController) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", apperrors.ErrValidation)
	}
	existing, err := c.users.GetByUsername(ctx, username)
	if err != nil {
		logging.ErrorLogger.Error("register: user lookup failed", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: username already exists", apperrors.ErrConflict)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	if _, err := c.users.Create(ctx, username, string(hashed)); err != nil {
		logging.ErrorLogger.Error("register: user create failed", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// Login verifies credentials and issues a signed 24h token. A missing user
// and a wrong password produce the same error, so login responses never
// reveal whether a username exists.
func (c *AuthController) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password required", apperrors.ErrValidation)
	}
	user, err := c.users.GetByUsername(ctx, username)
	if err != nil {
		logging.ErrorLogger.Error("login: user lookup failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	if user == nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	token, err := auth.GenerateToken(user.ID.String(), user.Username, []byte(c.cfg.JWTSecret))
	if err != nil {
		logging.ErrorLogger.Error("login: token signing failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return token, nil
}
