package acceptanceerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrAcceptanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Acceptance not found",
		http.StatusNotFound,
	)

	ErrAcceptanceExists = apperror.New(
		apperror.CodeConflict,
		"This leader already has an acceptance for the request",
		http.StatusConflict,
	)

	ErrInvalidAcceptanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid acceptance ID",
		http.StatusBadRequest,
	)

	ErrNotAcceptanceLeader = apperror.New(
		apperror.CodeForbidden,
		"Only the assigned leader can decide this acceptance",
		http.StatusForbidden,
	)

	ErrAcceptanceAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Acceptance has already been decided",
		http.StatusConflict,
	)
)
