package historyerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request ID",
		http.StatusBadRequest,
	)

	ErrZeroAdjustment = apperror.New(
		apperror.CodeValidation,
		"Adjustment must not be zero",
		http.StatusBadRequest,
	)

	ErrInvalidAsOf = apperror.New(
		apperror.CodeInvalidInput,
		"as_of must be an RFC3339 timestamp",
		http.StatusBadRequest,
	)
)
