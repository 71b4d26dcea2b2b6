package reporterrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrMissingDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date and end_date are required",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
