package handler

import (
	"log/slog"
	"net/http"

	"twashell/internal/delivery/api/response"
	"twashell/internal/domain/entity"
	"twashell/internal/infra/platform"
	"twashell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	Bus     *platform.MessageBus
	RelayUC usecase.RelayUsecase
	Logger  *slog.Logger
}

// TestHandler exposes development-only endpoints for exercising the foreground
// message relay without a live push provider.
type TestHandler struct {
	bus     *platform.MessageBus
	relayUC usecase.RelayUsecase
	logger  *slog.Logger
}

// NewTestHandler is the constructor for TestHandler
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		bus:     params.Bus,
		relayUC: params.RelayUC,
		logger:  params.Logger,
	}
}

// PublishForegroundMessage injects a message into the foreground relay as if
// the provider had delivered it.
func (h *TestHandler) PublishForegroundMessage(c echo.Context) error {
	var payload entity.PushPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message payload")
	}

	h.bus.Publish(&payload)

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "published"})
}

// AwaitForegroundMessage blocks until the next foreground message arrives or
// the request context is cancelled.
func (h *TestHandler) AwaitForegroundMessage(c echo.Context) error {
	payload, err := h.relayUC.AwaitNext(c.Request().Context())
	if err != nil {
		return response.Error(c, http.StatusRequestTimeout, "AWAIT_CANCELLED", "No message received before cancellation", nil)
	}

	return response.Success(c, http.StatusOK, payload)
}
