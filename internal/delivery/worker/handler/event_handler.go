package handler

import (
	"io"
	"log/slog"
	"net/http"

	"twashell/internal/domain/entity"
	"twashell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EventHandler receives platform lifecycle events and forwards them to the
// push use case. Event processing never fails the delivery: malformed bodies
// are the only rejection.
type EventHandler struct {
	logger  *slog.Logger
	pushUC  usecase.PushUsecase
	cacheUC usecase.AssetCacheUsecase
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Logger  *slog.Logger
	PushUC  usecase.PushUsecase
	CacheUC usecase.AssetCacheUsecase
}

// NewEventHandler creates a new platform event handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger:  params.Logger,
		pushUC:  params.PushUC,
		cacheUC: params.CacheUC,
	}
}

// HandlePush handles a raw push event. The body is the push payload as
// delivered, possibly empty or malformed; parse failures degrade to a default
// notification inside the use case rather than rejecting the event.
func (h *EventHandler) HandlePush(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("[Worker] Failed to read push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.pushUC.HandlePush(c.Request().Context(), raw); err != nil {
		h.logger.Error("[Worker] Failed to process push event", slog.Any("error", err))

		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// HandleFetch serves an asset request through the cache manager, cache-first
// with network fallback. The wildcard path is forwarded as a root-relative URL.
func (h *EventHandler) HandleFetch(c echo.Context) error {
	req := &entity.FetchRequest{
		Method: c.Request().Method,
		URL:    "/" + c.Param("*"),
		Header: c.Request().Header.Clone(),
	}

	resp, err := h.cacheUC.HandleFetch(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("[Worker] Fetch failed", slog.String("url", req.URL), slog.Any("error", err))

		return c.NoContent(http.StatusBadGateway)
	}

	header := c.Response().Header()
	for key, values := range resp.Header {
		if key == echo.HeaderContentType {
			continue
		}
		for _, value := range values {
			header.Add(key, value)
		}
	}

	return c.Blob(resp.StatusCode, resp.Header.Get(echo.HeaderContentType), resp.Body)
}

// HandleMessage handles a background provider message.
func (h *EventHandler) HandleMessage(c echo.Context) error {
	var payload entity.PushPayload
	if err := c.Bind(&payload); err != nil {
		h.logger.Error("[Worker] Failed to parse message payload", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.pushUC.HandleBackgroundMessage(c.Request().Context(), &payload); err != nil {
		h.logger.Error("[Worker] Failed to process background message", slog.Any("error", err))

		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// HandleNotificationClick handles a notification interaction event.
func (h *EventHandler) HandleNotificationClick(c echo.Context) error {
	var event entity.ClickEvent
	if err := c.Bind(&event); err != nil {
		h.logger.Error("[Worker] Failed to parse click event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.pushUC.HandleNotificationClick(c.Request().Context(), &event); err != nil {
		h.logger.Error("[Worker] Failed to process click event", slog.Any("error", err))

		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// HandleNotificationClose handles a notification dismissal event.
func (h *EventHandler) HandleNotificationClose(c echo.Context) error {
	var event entity.CloseEvent
	if err := c.Bind(&event); err != nil {
		h.logger.Error("[Worker] Failed to parse close event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	h.pushUC.HandleNotificationClose(c.Request().Context(), &event)

	return c.NoContent(http.StatusOK)
}
