package interfaces

import (
	"context"

	"smeta_admin/internal/domain/entities"
)

// IAuthGateway covers identity resolution against the backend. Login trades
// credentials for an opaque access token; CurrentUser resolves the token in
// ctx to an account with a role.
type IAuthGateway interface {
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (entities.User, error)
}
