package holiday_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/holiday"
	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/holiday/mock"
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

func newRouter(h *holiday.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/holidays", h.List)
	r.GET("/holidays/working-days", h.WorkingDays)
	r.POST("/holidays", h.Create)
	r.DELETE("/holidays/:id", h.Delete)
	return r
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(holiday.NewHandler(svc))

	svc.EXPECT().List(gomock.Any(), 2025).Return([]holiday.HolidayResponse{{ID: "h-1", Date: "2025-01-06", Name: "Epiphany"}}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/holidays?year=2025", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Len(t, env.Data.([]any), 1)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/holidays?year=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_WorkingDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(holiday.NewHandler(svc))

	svc.EXPECT().WorkingDays(gomock.Any(), date("2025-01-01"), date("2025-01-10")).Return(7, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/holidays/working-days?start=2025-01-01&end=2025-01-10", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.EqualValues(t, 7, env.Data.(map[string]any)["working_days"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/holidays/working-days?start=2025-01-10&end=2025-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(holiday.NewHandler(svc))

	t.Run("created", func(t *testing.T) {
		req := holiday.CreateHolidayRequest{Date: "2025-05-01", Name: "Labour Day"}
		svc.EXPECT().Create(gomock.Any(), req).Return(holiday.HolidayResponse{ID: "h-1", Date: req.Date, Name: req.Name}, nil)

		body, _ := json.Marshal(req)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		req := holiday.CreateHolidayRequest{Date: "2025-05-01", Name: "Labour Day"}
		svc.EXPECT().Create(gomock.Any(), req).Return(holiday.HolidayResponse{}, holidayerrors.ErrHolidayExists)

		body, _ := json.Marshal(req)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewReader(body)))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewReader([]byte(`{"date":"2025-05-01"}`))))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.(map[string]any)["code"])
	})
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRouter(holiday.NewHandler(svc))

	svc.EXPECT().Delete(gomock.Any(), "h-1").Return(holidayerrors.ErrHolidayNotFound)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/holidays/h-1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
