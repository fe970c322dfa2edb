package interfaces

import (
	"context"

	"nirman/internal/domain/entities"
)

// IUserRepository abstracts persistence for portal users.
// Lookups return an empty user (ID == "") when nothing matches.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}

// IUserCache keeps resolved user display fields close to the API.
type IUserCache interface {
	Get(ctx context.Context, id string) (entities.UserRef, bool, error)
	Set(ctx context.Context, ref entities.UserRef) error
}
