package resignation

import (
	"context"
	"errors"
	"time"

	resignationerrors "hrms/internal/resignation/errors"
	"hrms/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=resignation_service.go -destination=mock/resignation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateResignationRequest) (ResignationResponse, error)
	GetAll(ctx context.Context) ([]ResignationResponse, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("resignation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resignation.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create records the resignation and flips the employee's stored status to
// resigned in one transaction. Re-applying for an already resigned
// employee just rewrites the same final state.
func (s *service) Create(ctx context.Context, req CreateResignationRequest) (ResignationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create resignation requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
	)

	resignationDate, err := time.Parse("2006-01-02", req.ResignationDate)
	if err != nil {
		s.logger.Warn("create resignation invalid resignation_date",
			zap.String("resignation_date", req.ResignationDate),
			zap.Error(err),
		)
		return ResignationResponse{}, resignationerrors.ErrInvalidResignationDate
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create resignation employee lookup failed", zap.Error(err))
		return ResignationResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return ResignationResponse{}, resignationerrors.ErrUnknownEmployee
	}

	res := &Resignation{
		EmployeeID:      req.EmployeeID,
		ResignationDate: resignationDate,
		Reason:          req.Reason,
		Notes:           req.Notes,
		ApprovedBy:      req.ApprovedBy,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, res); err != nil {
			return err
		}
		return qtx.MarkEmployeeResigned(ctx, req.EmployeeID)
	})
	if err != nil {
		s.logger.Error("create resignation failed", zap.String("request_id", rid), zap.Error(err))
		return ResignationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create resignation success",
		zap.String("request_id", rid),
		zap.Uint("resignation_id", res.ID),
		zap.Uint("employee_id", res.EmployeeID),
	)
	return mapResignationToResponse(*res), nil
}

func (s *service) GetAll(ctx context.Context) ([]ResignationResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all resignations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ResignationResponse, len(rows))
	for i, row := range rows {
		res[i] = mapRowToResponse(row)
	}
	return res, nil
}

// Delete removes the history row only; the employee stays resigned.
func (s *service) Delete(ctx context.Context, id uint) (int64, error) {
	s.logger.Debug("delete resignation requested", zap.Uint("resignation_id", id))

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete resignation failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("delete resignation success",
		zap.Uint("resignation_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resignationerrors.ErrResignationNotFound
	}
	return err
}

func mapResignationToResponse(res Resignation) ResignationResponse {
	return ResignationResponse{
		ID:              res.ID,
		EmployeeID:      res.EmployeeID,
		ResignationDate: res.ResignationDate.Format("2006-01-02"),
		Reason:          res.Reason,
		Notes:           res.Notes,
		ApprovedBy:      res.ApprovedBy,
		CreatedAt:       res.CreatedAt.Format(time.RFC3339),
	}
}

func mapRowToResponse(row ResignationRow) ResignationResponse {
	return ResignationResponse{
		ID:              row.ID,
		EmployeeID:      row.EmployeeID,
		EmployeeName:    row.EmployeeName,
		EmployeeCode:    row.EmployeeCode,
		DepartmentName:  row.DepartmentName,
		PositionName:    row.PositionName,
		ResignationDate: row.ResignationDate.Format("2006-01-02"),
		Reason:          row.Reason,
		Notes:           row.Notes,
		ApprovedBy:      row.ApprovedBy,
		CreatedAt:       row.CreatedAt.Format(time.RFC3339),
	}
}
