package response

import (
	"time"

	"nirman/internal/domain/entities"
	"nirman/internal/usecase"
)

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      entities.User `json:"user"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, ExpiresAt: r.ExpiresAt, User: r.User}
}
