package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "smeta_admin/internal/adapter/http/dto/request"
	"smeta_admin/internal/infrastructure/backend"
	"smeta_admin/internal/usecase"
	"smeta_admin/pkg"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Username and password are required", http.StatusBadRequest)
)

// AuthHandler handles login and identity lookups. It holds no session state:
// the backend issues the token and every later request carries it back.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges credentials for a backend access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		if backend.IsUnauthorized(err) {
			appErr = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Wrong username or password", http.StatusUnauthorized)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// Me returns the authenticated account as the backend sees it.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.CurrentUser(c.Request.Context())
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, user)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentialsPayload):
		return errInvalidLoginPayload
	case errors.Is(err, usecase.ErrNotSupervisor):
		return errNotAllowed
	case backend.IsUnauthorized(err):
		return errInvalidToken
	case backend.IsForbidden(err):
		return errNotAllowed
	default:
		return mapBackendError(err)
	}
}

// mapBackendError is the shared fallthrough for errors no handler-specific
// case claimed: backend failures surface as 502, everything else as 500.
func mapBackendError(err error) *pkg.AppError {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return pkg.NewDomainError("BACKEND_ERROR", "The backend rejected the request", err, http.StatusBadGateway)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
