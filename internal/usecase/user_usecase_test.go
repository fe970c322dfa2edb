package usecase

import (
	"context"
	"errors"
	"testing"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	mock_interfaces "nirman/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Register(t *testing.T) {
	valid := RegisterUserInput{Username: " Asha ", Name: "Asha Verma", Role: "progress monitor", Password: "s3cret-pass"}

	t.Run("validation", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil)
		cases := []struct {
			name string
			in   RegisterUserInput
			want error
		}{
			{"missing username", RegisterUserInput{Name: "A", Role: "Admin", Password: "password1"}, ErrInvalidUserInput},
			{"unknown role", RegisterUserInput{Username: "a", Name: "A", Role: "Chief", Password: "password1"}, ErrInvalidRole},
			{"short password", RegisterUserInput{Username: "a", Name: "A", Role: "Admin", Password: "short"}, ErrPasswordTooShort},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Register(context.Background(), tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil, mock_interfaces.NewMockIPasswordHasher(ctrl))
		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(entities.User{ID: "u-1"}, nil)

		if _, err := uc.Register(context.Background(), valid); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewUserUseCase(repo, nil, hasher)

		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(entities.User{}, nil)
		hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Username != "asha" || u.Role != string(auth.RoleProgressMonitor) || u.PasswordHash != "hashed" {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		if _, err := uc.Register(context.Background(), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_ResolveRef(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		cache := mock_interfaces.NewMockIUserCache(ctrl)
		uc := NewUserUseCase(repo, cache, nil)

		cache.EXPECT().Get(gomock.Any(), "u-1").Return(entities.UserRef{ID: "u-1", Name: "Cached"}, true, nil)

		ref, err := uc.ResolveRef(context.Background(), "u-1")
		if err != nil || ref.Name != "Cached" {
			t.Fatalf("unexpected result %+v %v", ref, err)
		}
	})

	t.Run("cache failure falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		cache := mock_interfaces.NewMockIUserCache(ctrl)
		uc := NewUserUseCase(repo, cache, nil)

		cache.EXPECT().Get(gomock.Any(), "u-1").Return(entities.UserRef{}, false, errors.New("redis down"))
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Name: "Stored"}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		ref, err := uc.ResolveRef(context.Background(), "u-1")
		if err != nil || ref.Name != "Stored" {
			t.Fatalf("unexpected result %+v %v", ref, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "u-x").Return(entities.User{}, nil)

		if _, err := uc.ResolveRef(context.Background(), "u-x"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
