package transfer

import (
	"context"
	"errors"
	"time"

	"hrms/internal/shared/contextutil"
	transfererrors "hrms/internal/transfer/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=transfer_service.go -destination=mock/transfer_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTransferRequest) (TransferResponse, error)
	GetAll(ctx context.Context) ([]TransferResponse, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("transfer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create records the transfer and moves the employee's current assignment
// in one transaction: either both rows change or neither does.
func (s *service) Create(ctx context.Context, req CreateTransferRequest) (TransferResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create transfer requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
	)

	transferDate, err := time.Parse("2006-01-02", req.TransferDate)
	if err != nil {
		s.logger.Warn("create transfer invalid transfer_date",
			zap.String("transfer_date", req.TransferDate),
			zap.Error(err),
		)
		return TransferResponse{}, transfererrors.ErrInvalidTransferDate
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create transfer employee lookup failed", zap.Error(err))
		return TransferResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return TransferResponse{}, transfererrors.ErrUnknownEmployee
	}

	pt := &PositionTransfer{
		EmployeeID:       req.EmployeeID,
		FromDepartmentID: req.FromDepartmentID,
		FromPositionID:   req.FromPositionID,
		ToDepartmentID:   req.ToDepartmentID,
		ToPositionID:     req.ToPositionID,
		TransferDate:     transferDate,
		Reason:           req.Reason,
		ApprovedBy:       req.ApprovedBy,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, pt); err != nil {
			return err
		}
		return qtx.UpdateEmployeeAssignment(ctx, req.EmployeeID, req.ToDepartmentID, req.ToPositionID)
	})
	if err != nil {
		s.logger.Error("create transfer failed", zap.String("request_id", rid), zap.Error(err))
		return TransferResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create transfer success",
		zap.String("request_id", rid),
		zap.Uint("transfer_id", pt.ID),
		zap.Uint("employee_id", pt.EmployeeID),
	)
	return mapTransferToResponse(*pt), nil
}

func (s *service) GetAll(ctx context.Context) ([]TransferResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all transfers failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]TransferResponse, len(rows))
	for i, row := range rows {
		res[i] = mapRowToResponse(row)
	}
	return res, nil
}

// Delete only removes the history row, it does not reverse the employee
// assignment cascade.
func (s *service) Delete(ctx context.Context, id uint) (int64, error) {
	s.logger.Debug("delete transfer requested", zap.Uint("transfer_id", id))

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete transfer failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("delete transfer success",
		zap.Uint("transfer_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return transfererrors.ErrTransferNotFound
	}
	return err
}

func mapTransferToResponse(pt PositionTransfer) TransferResponse {
	return TransferResponse{
		ID:               pt.ID,
		EmployeeID:       pt.EmployeeID,
		FromDepartmentID: pt.FromDepartmentID,
		FromPositionID:   pt.FromPositionID,
		ToDepartmentID:   pt.ToDepartmentID,
		ToPositionID:     pt.ToPositionID,
		TransferDate:     pt.TransferDate.Format("2006-01-02"),
		Reason:           pt.Reason,
		ApprovedBy:       pt.ApprovedBy,
		CreatedAt:        pt.CreatedAt.Format(time.RFC3339),
	}
}

func mapRowToResponse(row TransferRow) TransferResponse {
	return TransferResponse{
		ID:                 row.ID,
		EmployeeID:         row.EmployeeID,
		EmployeeName:       row.EmployeeName,
		EmployeeCode:       row.EmployeeCode,
		FromDepartmentID:   row.FromDepartmentID,
		FromPositionID:     row.FromPositionID,
		ToDepartmentID:     row.ToDepartmentID,
		ToPositionID:       row.ToPositionID,
		FromDepartmentName: row.FromDepartmentName,
		FromPositionName:   row.FromPositionName,
		ToDepartmentName:   row.ToDepartmentName,
		ToPositionName:     row.ToPositionName,
		TransferDate:       row.TransferDate.Format("2006-01-02"),
		Reason:             row.Reason,
		ApprovedBy:         row.ApprovedBy,
		CreatedAt:          row.CreatedAt.Format(time.RFC3339),
	}
}
