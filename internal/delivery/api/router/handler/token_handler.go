package handler

import (
	"log/slog"
	"net/http"

	"twashell/internal/delivery/api/response"
	domainerrors "twashell/internal/domain/errors"
	"twashell/internal/domain/repository"
	"twashell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler exposes the registration token lifecycle endpoints.
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// AcquireToken handles POST /api/token/acquire. The acquisition outcome is
// always reported in the body, including failures.
func (h *TokenHandler) AcquireToken(c echo.Context) error {
	acquisition := h.tokenUC.AcquireToken(c.Request().Context())

	return response.Success(c, http.StatusOK, acquisition)
}

// GetToken handles GET /api/token
func (h *TokenHandler) GetToken(c echo.Context) error {
	token, err := h.tokenUC.CurrentToken(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoToken) {
			return response.HandleAppError(c, domainerrors.ErrTokenNotFound)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token})
}

// ClearToken handles DELETE /api/token
func (h *TokenHandler) ClearToken(c echo.Context) error {
	if err := h.tokenUC.ClearToken(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "token cleared"})
}
