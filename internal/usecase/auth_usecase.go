package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"smeta_admin/internal/domain/entities"
	"smeta_admin/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentialsPayload = errors.New("username and password are required")
	ErrNotSupervisor             = errors.New("account role is not allowed here")
)

// IAuthUseCase resolves identity against the backend. The admin surface is
// reachable for supervisors only; everyone else is bounced the way the
// original screens bounce them to the dashboard.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (entities.User, error)
	RequireSupervisor(ctx context.Context) (entities.User, error)
}

type AuthUseCase struct {
	gateway interfaces.IAuthGateway
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.IAuthGateway) *AuthUseCase {
	return &AuthUseCase{gateway: gateway}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentialsPayload
	}
	token, err := u.gateway.Login(ctx, username, password)
	if err != nil {
		log.Printf("[auth][usecase] login failed username=%s err=%v", username, err)
		return "", err
	}
	return token, nil
}

func (u *AuthUseCase) CurrentUser(ctx context.Context) (entities.User, error) {
	return u.gateway.CurrentUser(ctx)
}

func (u *AuthUseCase) RequireSupervisor(ctx context.Context) (entities.User, error) {
	user, err := u.gateway.CurrentUser(ctx)
	if err != nil {
		return entities.User{}, err
	}
	if user.Role != entities.RoleSupervisor {
		log.Printf("[auth][usecase] role gate rejected user_id=%d role=%s", user.ID, user.Role)
		return entities.User{}, ErrNotSupervisor
	}
	return user, nil
}
