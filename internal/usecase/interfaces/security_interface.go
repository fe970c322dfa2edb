package interfaces

import (
	"time"

	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
)

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ITokenIssuer signs and verifies bearer tokens.
type ITokenIssuer interface {
	Issue(u entities.User, now time.Time) (token string, expiresAt time.Time, err error)
	Parse(token string) (auth.Session, error)
}
