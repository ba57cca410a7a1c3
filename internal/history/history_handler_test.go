package history_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/history"
	"go-leave/internal/history/mock"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newRouter(h *history.Handler, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id_validated", userID)
		c.Set("role", role)
		c.Next()
	})
	r.GET("/history", h.List)
	r.GET("/history/balance", h.Balance)
	r.POST("/history/adjust", h.Adjust)
	return r
}

func TestHandler_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	t.Run("own balance", func(t *testing.T) {
		r := newRouter(history.NewHandler(svc), "u-1", "WORKER")
		svc.EXPECT().RemainingBalance(gomock.Any(), "u-1", nil).Return(days("7.5"), nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/balance?user_id=u-2", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "7.5", env.Data.(map[string]any)["remaining"])
	})

	t.Run("admin inspects another user", func(t *testing.T) {
		r := newRouter(history.NewHandler(svc), "admin", "ADMIN")
		svc.EXPECT().RemainingBalance(gomock.Any(), "u-2", nil).Return(days("1"), nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/balance?user_id=u-2", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad as_of", func(t *testing.T) {
		r := newRouter(history.NewHandler(svc), "u-1", "WORKER")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/balance?as_of=yesterday", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(history.NewHandler(svc), "u-1", "WORKER")

	svc.EXPECT().ListByUser(gomock.Any(), "u-1").Return([]history.HistoryResponse{
		{ID: "h-1", Days: days("-1")},
		{ID: "h-2", Days: days("26")},
	}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history?page_size=1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Len(t, env.Data.([]any), 1)
	assert.Equal(t, int64(2), env.Meta.Total)
}

func TestHandler_Adjust(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(history.NewHandler(svc), "admin", "ADMIN")

	userID := "0b7f7c86-5f38-4a53-8f6f-3c1b9c0a1d22"
	svc.EXPECT().Adjust(gomock.Any(), "admin", gomock.Any()).DoAndReturn(
		func(_ any, _ string, req history.AdjustRequest) (history.HistoryResponse, error) {
			assert.True(t, req.Days.Equal(days("2")))
			return history.HistoryResponse{ID: "h-1", UserID: req.UserID, Days: req.Days}, nil
		})

	body := []byte(`{"user_id":"` + userID + `","days":"2","comment":"bonus"}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/history/adjust", bytes.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/history/adjust", bytes.NewReader([]byte(`{"user_id":"x","days":"1","comment":"c"}`))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
