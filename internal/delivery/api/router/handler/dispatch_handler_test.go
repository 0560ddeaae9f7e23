package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockSvc "twashell/internal/mocks/service"
	"twashell/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchHandler(t *testing.T) (*DispatchHandler, *mockSvc.MockMessenger) {
	messenger := mockSvc.NewMockMessenger(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := &DispatchHandler{
		dispatchUC: impl.NewDispatchService(logger, messenger),
		logger:     logger,
	}

	return handler, messenger
}

func performSend(handler *DispatchHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/send-notification", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.SendNotification(c)

	return rec
}

func TestDispatchHandler_SendNotification_MissingContent(t *testing.T) {
	handler, _ := createTestDispatchHandler(t)

	rec := performSend(handler, `{"token":"token-1","title":"제목"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "제목과 메시지는 필수입니다.", body["error"])
}

func TestDispatchHandler_SendNotification_MissingTarget(t *testing.T) {
	handler, _ := createTestDispatchHandler(t)

	rec := performSend(handler, `{"title":"제목","message":"메시지"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "토큰 또는 토큰 배열이 필요합니다.", body["error"])
}

func TestDispatchHandler_SendNotification_SingleTokenSuccess(t *testing.T) {
	handler, messenger := createTestDispatchHandler(t)

	messenger.EXPECT().
		Send(mock.Anything, "token-1", "제목", "메시지", mock.Anything).
		Return("projects/p/messages/1", nil)

	rec := performSend(handler, `{"token":"token-1","title":"제목","message":"메시지"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body SendSuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "알림이 성공적으로 발송되었습니다.", body.Message)
	require.NotNil(t, body.Result)
	assert.Equal(t, "projects/p/messages/1", body.Result.MessageID)
}

func TestDispatchHandler_SendNotification_ProviderFailure(t *testing.T) {
	handler, messenger := createTestDispatchHandler(t)

	messenger.EXPECT().
		Send(mock.Anything, "token-1", "제목", "메시지", mock.Anything).
		Return("", errors.New("registration-token-not-registered"))

	rec := performSend(handler, `{"token":"token-1","title":"제목","message":"메시지"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body SendFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "알림 발송에 실패했습니다.", body.Error)
	assert.Equal(t, "registration-token-not-registered", body.Details)
}

func TestDispatchHandler_SendNotification_ProviderNotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := &DispatchHandler{
		dispatchUC: impl.NewDispatchService(logger, nil),
		logger:     logger,
	}

	rec := performSend(handler, `{"token":"token-1","title":"제목","message":"메시지"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body SendFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "알림 발송에 실패했습니다.", body.Error)
	assert.Equal(t, "Firebase Admin SDK not initialized", body.Details)
}

func TestDispatchHandler_DescribeSendAPI(t *testing.T) {
	handler, _ := createTestDispatchHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/send-notification", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.DescribeSendAPI(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "endpoints")
}
