package position

import (
	"errors"
	"strings"

	positionerrors "hrms/internal/position/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return positionerrors.ErrUnknownDepartment
	}

	// sqlite reports constraint failures as plain messages
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		return positionerrors.ErrUnknownDepartment
	}

	return err
}
