package transfererrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrTransferNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position transfer not found",
		http.StatusNotFound,
	)
	ErrInvalidTransferID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position transfer ID",
		http.StatusBadRequest,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidTransferDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid transfer_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
