package resignationerrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrResignationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Resignation not found",
		http.StatusNotFound,
	)
	ErrInvalidResignationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid resignation ID",
		http.StatusBadRequest,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidResignationDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid resignation_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
