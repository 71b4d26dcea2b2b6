package probationerrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrProbationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Probation period not found",
		http.StatusNotFound,
	)
	ErrInvalidProbationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid probation period ID",
		http.StatusBadRequest,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
