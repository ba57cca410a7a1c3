package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "conflict", http.StatusConflict)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "conflict", got.Message)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", apperror.ErrForbidden)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))

	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.CodeInternalError, "failed", http.StatusInternalServerError)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed: boom", err.Error())
}

func TestWithDetails(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "overlapping", http.StatusConflict)

	detailed := sentinel.WithDetails(map[string]string{"request_id": "r-1"})

	assert.Nil(t, sentinel.Details)
	assert.ErrorIs(t, detailed, sentinel)
	assert.ErrorIs(t, fmt.Errorf("submit: %w", detailed), sentinel)
	assert.ErrorIs(t, detailed.WithDetails("again"), sentinel)
	assert.NotErrorIs(t, detailed, apperror.ErrForbidden)

	sameCode := apperror.New(apperror.CodeConflict, "other conflict", http.StatusConflict)
	assert.NotErrorIs(t, detailed, sameCode)
	assert.Equal(t, map[string]string{"request_id": "r-1"}, apperror.ToHTTP(detailed).Details)
}
