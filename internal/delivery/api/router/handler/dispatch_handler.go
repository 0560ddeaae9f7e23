package handler

import (
	"log/slog"
	"net/http"

	domainerrors "twashell/internal/domain/errors"
	"twashell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgDispatchSuccess = "알림이 성공적으로 발송되었습니다."
	msgDispatchFailed  = "알림 발송에 실패했습니다."
	msgServerError     = "서버 오류가 발생했습니다."
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler exposes the notification send endpoint.
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// SendNotificationRequest represents the request body for sending a notification
type SendNotificationRequest struct {
	Token   string            `json:"token"`
	Tokens  []string          `json:"tokens"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

// ValidationErrorResponse is the body for request validation failures.
type ValidationErrorResponse struct {
	Error string `json:"error"`
}

// SendSuccessResponse is the body for a successful dispatch.
type SendSuccessResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Result  *usecase.DispatchResult `json:"result"`
}

// SendFailureResponse is the body for a failed dispatch.
type SendFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SendNotification handles POST /api/send-notification
func (h *DispatchHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to parse send request", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, SendFailureResponse{
			Success: false,
			Error:   msgServerError,
			Details: err.Error(),
		})
	}

	if req.Title == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error: domainerrors.ErrMissingContent.Message(),
		})
	}

	if req.Token == "" && len(req.Tokens) == 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error: domainerrors.ErrMissingTarget.Message(),
		})
	}

	input := &usecase.DispatchInput{
		Token:   req.Token,
		Tokens:  req.Tokens,
		Title:   req.Title,
		Message: req.Message,
		Data:    req.Data,
	}

	result, err := h.dispatchUC.Dispatch(c.Request().Context(), input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			details := appErr.Details()
			if details == "" {
				details = appErr.Message()
			}

			return c.JSON(http.StatusInternalServerError, SendFailureResponse{
				Success: false,
				Error:   msgDispatchFailed,
				Details: details,
			})
		}

		h.logger.Error("dispatch failed with unexpected error", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, SendFailureResponse{
			Success: false,
			Error:   msgServerError,
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, SendSuccessResponse{
		Success: true,
		Message: msgDispatchSuccess,
		Result:  result,
	})
}

// DescribeSendAPI handles GET /api/send-notification, returning the endpoint
// contract for manual testing.
func (h *DispatchHandler) DescribeSendAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "FCM 알림 발송 API가 정상적으로 작동 중입니다.",
		"endpoints": map[string]any{
			"POST": "/api/send-notification",
			"body": map[string]string{
				"token":   "string (단일 토큰)",
				"tokens":  "string[] (다중 토큰)",
				"title":   "string (필수)",
				"message": "string (필수)",
				"data":    "object (선택사항)",
			},
		},
	})
}
