package requesterrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)

	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request ID",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidPeriod = apperror.New(
		"INVALID_PERIOD",
		"Start date must be within the last month and not after the end date",
		http.StatusBadRequest,
	)

	ErrNotEnoughDays = apperror.New(
		apperror.CodeNotEnoughDays,
		"Not enough days left in the leave pool",
		http.StatusUnprocessableEntity,
	)

	ErrRequestOverlapping = apperror.New(
		"REQUEST_OVERLAPPING",
		"The request overlaps another pending or accepted request",
		http.StatusConflict,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Invalid request status transition",
		http.StatusBadRequest,
	)

	ErrUnknownOccasion = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown occasion",
		http.StatusBadRequest,
	)

	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the requester or an admin can cancel this request",
		http.StatusForbidden,
	)

	ErrInvalidSince = apperror.New(
		apperror.CodeInvalidInput,
		"since must be an RFC3339 timestamp",
		http.StatusBadRequest,
	)
)
