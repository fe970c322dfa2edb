package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	mock_interfaces "nirman/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	user := entities.User{ID: "u-1", Username: "asha", Role: string(auth.RoleAdmin), PasswordHash: "hash"}

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, mock_interfaces.NewMockIPasswordHasher(ctrl), mock_interfaces.NewMockITokenIssuer(ctrl))
		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(entities.User{}, nil)

		if _, err := uc.Login(context.Background(), "Asha", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(repo, hasher, mock_interfaces.NewMockITokenIssuer(ctrl))
		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(user, nil)
		hasher.EXPECT().Compare("hash", "bad").Return(errors.New("mismatch"))

		if _, err := uc.Login(context.Background(), "asha", "bad"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(repo, hasher, tokens)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(user, nil)
		hasher.EXPECT().Compare("hash", "good").Return(nil)
		tokens.EXPECT().Issue(user, fixedNow).Return("jwt", fixedNow.Add(time.Hour), nil)

		res, err := uc.Login(context.Background(), "asha", "good")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "jwt" || res.User.ID != "u-1" || !res.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAuthUseCase_Me(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		if _, err := uc.Me(context.Background()); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("session user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "u-admin").Return(entities.User{ID: "u-admin", Name: "Admin"}, nil)

		u, err := uc.Me(adminCtx())
		if err != nil || u.Name != "Admin" {
			t.Fatalf("unexpected result %+v %v", u, err)
		}
	})
}
