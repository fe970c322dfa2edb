package usecase

import (
	"context"
	"errors"
	"strings"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidUserInput = errors.New("username, name, role and password are required")
	ErrInvalidRole      = errors.New("unknown role")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

type RegisterUserInput struct {
	Username   string
	Name       string
	Email      string
	Department string
	Role       string
	Password   string
}

// IUserUseCase manages portal accounts and resolves user ids to display
// fields.
type IUserUseCase interface {
	Register(ctx context.Context, in RegisterUserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	ResolveRef(ctx context.Context, id string) (entities.UserRef, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	cache  interfaces.IUserCache
	hasher interfaces.IPasswordHasher
}

var _ IUserUseCase = (*UserUseCase)(nil)

// NewUserUseCase wires the user directory. cache may be nil.
func NewUserUseCase(repo interfaces.IUserRepository, cache interfaces.IUserCache, hasher interfaces.IPasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, cache: cache, hasher: hasher}
}

func (u *UserUseCase) Register(ctx context.Context, in RegisterUserInput) (entities.User, error) {
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.Name = strings.TrimSpace(in.Name)
	if in.Username == "" || in.Name == "" || in.Role == "" || in.Password == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	role, ok := auth.ParseRole(in.Role)
	if !ok {
		return entities.User{}, ErrInvalidRole
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrPasswordTooShort
	}

	if existing, err := u.repo.GetByUsername(ctx, in.Username); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUsernameTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Name:         in.Name,
		Email:        strings.TrimSpace(in.Email),
		Department:   strings.TrimSpace(in.Department),
		Role:         string(role),
		PasswordHash: hash,
	}
	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	logger.Info(ctx, "[user][usecase] registered", zap.String("user_id", created.ID), zap.String("role", created.Role))
	return created, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// ResolveRef is cache-aside: cache hit, else repository and cache fill.
// Cache failures never fail the lookup.
func (u *UserUseCase) ResolveRef(ctx context.Context, id string) (entities.UserRef, error) {
	if u.cache != nil {
		ref, ok, err := u.cache.Get(ctx, id)
		if err != nil {
			logger.Warn(ctx, "[user][usecase] cache get failed", zap.String("user_id", id), zap.Error(err))
		} else if ok {
			return ref, nil
		}
	}

	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.UserRef{}, err
	}
	ref := user.Ref()
	if u.cache != nil {
		if err := u.cache.Set(ctx, ref); err != nil {
			logger.Warn(ctx, "[user][usecase] cache set failed", zap.String("user_id", id), zap.Error(err))
		}
	}
	return ref, nil
}
