package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Me(ctx context.Context) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenIssuer
	now    func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, now: time.Now}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" {
		logger.Info(ctx, "[auth][usecase] login unknown user", zap.String("username", username))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		logger.Info(ctx, "[auth][usecase] login bad password", zap.String("user_id", user.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(user, u.now())
	if err != nil {
		return LoginResult{}, err
	}
	logger.Info(ctx, "[auth][usecase] login success", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Me returns the account behind the request session.
func (u *AuthUseCase) Me(ctx context.Context) (entities.User, error) {
	s, ok := auth.SessionFrom(ctx)
	if !ok || s.UserID == "" {
		return entities.User{}, ErrUnauthenticated
	}
	user, err := u.users.GetByID(ctx, s.UserID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
