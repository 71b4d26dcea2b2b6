package probation

import (
	"context"
	"errors"
	"time"

	probationerrors "hrms/internal/probation/errors"
	"hrms/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=probation_service.go -destination=mock/probation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProbationRequest) (ProbationResponse, error)
	GetAll(ctx context.Context) ([]ProbationResponse, error)
	Update(ctx context.Context, id uint, req UpdateProbationRequest) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("probation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("probation.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateProbationRequest) (ProbationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create probation period requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
	)

	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return ProbationResponse{}, err
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create probation employee lookup failed", zap.Error(err))
		return ProbationResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return ProbationResponse{}, probationerrors.ErrUnknownEmployee
	}

	pp := &ProbationPeriod{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     StatusOngoing,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(ctx, pp); err != nil {
		s.logger.Error("create probation persist failed", zap.String("request_id", rid), zap.Error(err))
		return ProbationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create probation period success",
		zap.String("request_id", rid),
		zap.Uint("probation_id", pp.ID),
	)
	return mapPeriodToResponse(*pp), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProbationResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all probation periods failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ProbationResponse, len(rows))
	for i, row := range rows {
		res[i] = mapRowToResponse(row)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateProbationRequest) (int64, error) {
	s.logger.Debug("update probation period requested", zap.Uint("probation_id", id))

	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return 0, err
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	if !exists {
		return 0, probationerrors.ErrUnknownEmployee
	}

	affected, err := s.repo.Update(ctx, id, &ProbationPeriod{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		s.logger.Error("update probation persist failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("update probation period success",
		zap.Uint("probation_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func (s *service) Delete(ctx context.Context, id uint) (int64, error) {
	s.logger.Debug("delete probation period requested", zap.Uint("probation_id", id))

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete probation failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("delete probation period success",
		zap.Uint("probation_id", id),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, probationerrors.ErrInvalidDate
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, probationerrors.ErrInvalidDate
	}
	return startDate, endDate, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return probationerrors.ErrProbationNotFound
	}
	return err
}

func mapPeriodToResponse(pp ProbationPeriod) ProbationResponse {
	return ProbationResponse{
		ID:         pp.ID,
		EmployeeID: pp.EmployeeID,
		StartDate:  pp.StartDate.Format("2006-01-02"),
		EndDate:    pp.EndDate.Format("2006-01-02"),
		Status:     pp.Status,
		Notes:      pp.Notes,
		CreatedAt:  pp.CreatedAt.Format(time.RFC3339),
	}
}

func mapRowToResponse(row ProbationRow) ProbationResponse {
	return ProbationResponse{
		ID:           row.ID,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		EmployeeCode: row.EmployeeCode,
		StartDate:    row.StartDate.Format("2006-01-02"),
		EndDate:      row.EndDate.Format("2006-01-02"),
		Status:       row.Status,
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
	}
}
