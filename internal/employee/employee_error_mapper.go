package employee

import (
	"errors"
	"strings"

	employeeerrors "hrms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return employeeerrors.ErrEmployeeCodeAlreadyExists
		case "23503":
			return employeeerrors.ErrUnknownReference
		}
	}

	// sqlite reports constraint failures as plain messages
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint") && strings.Contains(errMsg, "code") {
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	}
	if strings.Contains(errMsg, "foreign key constraint") {
		return employeeerrors.ErrUnknownReference
	}

	return err
}
