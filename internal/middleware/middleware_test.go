package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret"

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")}, nil)
	})
	r.POST("/ping", handlers...)
	r.GET("/ping", handlers...)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthMiddleware(t *testing.T) {
	userID := "6f1c9a40-1b7e-4a53-9d3f-0e4b6d2a9c11"

	t.Run("valid bearer token sets identity", func(t *testing.T) {
		token, err := middleware.SignToken(testSecret, userID, "LEADER", time.Hour)
		require.NoError(t, err)

		r := newRouter(middleware.AuthMiddleware(testSecret))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		data := env.Data.(map[string]any)
		assert.Equal(t, userID, data["user_id"])
		assert.Equal(t, "LEADER", data["role"])
	})

	t.Run("token from cookie", func(t *testing.T) {
		token, err := middleware.SignToken(testSecret, userID, "WORKER", time.Hour)
		require.NoError(t, err)

		r := newRouter(middleware.AuthMiddleware(testSecret))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		r := newRouter(middleware.AuthMiddleware(testSecret))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Ok)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := middleware.SignToken("other", userID, "WORKER", time.Hour)
		require.NoError(t, err)

		r := newRouter(middleware.AuthMiddleware(testSecret))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_TOKEN", env.Error.(map[string]any)["code"])
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := middleware.SignToken(testSecret, userID, "WORKER", -time.Minute)
		require.NoError(t, err)

		r := newRouter(middleware.AuthMiddleware(testSecret))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "TOKEN_EXPIRED", env.Error.(map[string]any)["code"])
	})
}

func TestRBACAuthorize(t *testing.T) {
	setUser := func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Next()
	}

	t.Run("allowed", func(t *testing.T) {
		enf := &fakeEnforcer{allowed: true}
		r := newRouter(setUser, middleware.RBACAuthorize(enf, "request", "decide"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.EnforceRequest{UserID: "u-1", Resource: "request", Action: "decide"}, enf.got)
	})

	t.Run("denied", func(t *testing.T) {
		r := newRouter(setUser, middleware.RBACAuthorize(&fakeEnforcer{}, "request", "decide"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		r := newRouter(setUser, middleware.RBACAuthorize(&fakeEnforcer{err: errors.New("boom")}, "request", "decide"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		r := newRouter(middleware.RBACAuthorize(&fakeEnforcer{allowed: true}, "request", "decide"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestIdempotency(t *testing.T) {
	setUser := func(c *gin.Context) {
		c.Set("user_id_validated", "u-1")
		c.Next()
	}
	cacheKey := "idemp:/ping:u-1:key-1"

	t.Run("replays cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal(`{"id":"r-1"}`)

		r := newRouter(setUser, middleware.Idempotency(rdb))
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "r-1", env.Data.(map[string]any)["id"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := newRouter(setUser, middleware.Idempotency(rdb))
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		r := newRouter(setUser, middleware.Idempotency(rdb))
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without header skips redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		r := newRouter(setUser, middleware.Idempotency(rdb))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateLimitByUser(t *testing.T) {
	setUser := func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Next()
	}
	r := newRouter(setUser, middleware.RateLimitByUser(0.001, 1))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	root := zap.New(core)
	serviceLogger := root.Named("request.service")

	r := gin.New()
	r.GET("/requests",
		func(c *gin.Context) {
			c.Set("user_id_validated", "user-1")
			c.Next()
		},
		middleware.ContextLogger(root),
		func(c *gin.Context) {
			contextutil.ScopedLogger(c.Request.Context(), serviceLogger).Info("list requests")
			c.Status(http.StatusNoContent)
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "request.service", entries[0].LoggerName)
	assert.Equal(t, "rid-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "user-1", entries[0].ContextMap()["user_id"])

	assert.Equal(t, "http", entries[1].LoggerName)
	access := entries[1].ContextMap()
	assert.Equal(t, "rid-1", access["request_id"])
	assert.Equal(t, "/requests", access["route"])
	assert.EqualValues(t, http.StatusNoContent, access["status"])
}
