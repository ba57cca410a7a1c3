package rbacerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrUnknownRole = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)

	ErrEnforceOtherUser = apperror.New(
		apperror.CodeForbidden,
		"Only admins can check permissions of other users",
		http.StatusForbidden,
	)
)
